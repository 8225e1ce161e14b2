// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package tod

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher64/hardware/cia/timer"
)

// Register offsets of the time-of-day clock, relative to the first TOD
// register of the CIA.
const (
	Tenths = iota
	Seconds
	Minutes
	Hours
)

// PM is the bit in the hours register that indicates the afternoon.
const PM = 0x80

const (
	// the time of day at power-on, in tenths of a second since midnight
	powerOn = 1 * tenthsPerHour

	tenthsPerSecond = 10
	tenthsPerMinute = 60 * tenthsPerSecond
	tenthsPerHour   = 60 * tenthsPerMinute
	tenthsPerDay    = 24 * tenthsPerHour
)

// Time is a snapshot of the time-of-day clock. All fields are BCD encoded.
type Time struct {
	Tenths  uint8
	Seconds uint8
	Minutes uint8

	// the PM bit is set for times in the afternoon
	Hours uint8
}

func (tm Time) String() string {
	ampm := "AM"
	if tm.Hours&PM == PM {
		ampm = "PM"
	}
	return fmt.Sprintf("%02x:%02x:%02x.%x %s", tm.Hours&^PM, tm.Minutes, tm.Seconds, tm.Tenths, ampm)
}

// TOD is the time-of-day clock.
type TOD struct {
	clk   timer.Clock
	start time.Time

	// the values returned by the seconds, minutes and hours registers
	latched Time
}

// NewTOD is the preferred method of initialisation for the TOD type.
func NewTOD(clk timer.Clock) *TOD {
	tod := &TOD{clk: clk}
	tod.Reset()
	return tod
}

// Reset the clock to the power-on time.
func (tod *TOD) Reset() {
	tod.start = tod.clk.Now()
	tod.latched = tod.Now()
}

func (tod *TOD) String() string {
	return tod.latched.String()
}

func bcd(v int) uint8 {
	return uint8((v/10)<<4 | v%10)
}

// Now returns the current time of the clock without latching it.
func (tod *TOD) Now() Time {
	elapsed := tod.clk.Now().Sub(tod.start)
	t := (powerOn + int(elapsed/(100*time.Millisecond))) % tenthsPerDay

	var tm Time
	tm.Tenths = bcd(t % tenthsPerSecond)
	tm.Seconds = bcd((t / tenthsPerSecond) % 60)
	tm.Minutes = bcd((t / tenthsPerMinute) % 60)

	h := t / tenthsPerHour
	if h >= 12 {
		tm.Hours = PM
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	tm.Hours |= bcd(h)

	return tm
}

// Read the value of a TOD register. Reading the tenths register latches the
// current time.
func (tod *TOD) Read(reg int) uint8 {
	switch reg {
	case Tenths:
		tod.latched = tod.Now()
		return tod.latched.Tenths
	case Seconds:
		return tod.latched.Seconds
	case Minutes:
		return tod.latched.Minutes
	case Hours:
		return tod.latched.Hours
	}
	return 0
}

// Peek returns the value of a TOD register without latching the time.
func (tod *TOD) Peek(reg int) uint8 {
	switch reg {
	case Tenths:
		return tod.Now().Tenths
	case Seconds:
		return tod.latched.Seconds
	case Minutes:
		return tod.latched.Minutes
	case Hours:
		return tod.latched.Hours
	}
	return 0
}
