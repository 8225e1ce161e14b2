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

package timer

import (
	"fmt"
	"time"
)

// Bits in the control register of a timer.
const (
	ControlStart     = 0x01
	ControlOneShot   = 0x08
	ControlForceLoad = 0x10
)

// Timer implements one of the two interval timers of the CIA.
type Timer struct {
	label string
	clk   Clock

	// phi2 ticks per second
	rate float64

	// the value the counter is reloaded with on underflow
	Latch uint16

	// the value of the counter at the reference point
	counter uint16

	// the reference point from which elapsed time is measured. only meaningful
	// when the timer is started
	reference time.Time

	// the control register. only the start and one-shot bits are kept
	control uint8
}

// NewTimer is the preferred method of initialisation for the Timer type. The
// rate argument is the number of times per second the timer counts down.
func NewTimer(label string, clk Clock, rate float64) *Timer {
	tmr := &Timer{
		label: label,
		clk:   clk,
		rate:  rate,
	}
	tmr.Reset()
	return tmr
}

// Reset timer to the power-on state.
func (tmr *Timer) Reset() {
	tmr.Latch = 0
	tmr.counter = 0
	tmr.control = 0
	tmr.reference = tmr.clk.Now()
}

// SetRate changes the number of times per second the timer counts down. Time
// that has already elapsed is counted at the previous rate.
func (tmr *Timer) SetRate(rate float64) {
	if tmr.Started() {
		tmr.counter = tmr.Counter()
		tmr.reference = tmr.clk.Now()
	}
	tmr.rate = rate
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("%s: latch=%04x counter=%04x started=%v oneshot=%v",
		tmr.label, tmr.Latch, tmr.Counter(), tmr.Started(), tmr.OneShot())
}

// Label returns the name of the timer.
func (tmr *Timer) Label() string {
	return tmr.label
}

// Started returns true if the timer is counting.
func (tmr *Timer) Started() bool {
	return tmr.control&ControlStart == ControlStart
}

// OneShot returns true if the timer will stop after it next underflows.
func (tmr *Timer) OneShot() bool {
	return tmr.control&ControlOneShot == ControlOneShot
}

// Control returns the value of the control register.
func (tmr *Timer) Control() uint8 {
	return tmr.control
}

// SetControl sets the control register. Bits other than start, one-shot and
// force load are ignored.
func (tmr *Timer) SetControl(data uint8) {
	// freeze the counter at the current value if the timer is being stopped
	if tmr.Started() && data&ControlStart == 0 {
		tmr.counter = tmr.Counter()
	}

	// begin measuring from now if the timer is being started
	if !tmr.Started() && data&ControlStart == ControlStart {
		tmr.reference = tmr.clk.Now()
	}

	tmr.control = data & (ControlStart | ControlOneShot)

	if data&ControlForceLoad == ControlForceLoad {
		tmr.load()
	}
}

// SetLatchLo sets the low byte of the latch.
func (tmr *Timer) SetLatchLo(data uint8) {
	tmr.Latch = (tmr.Latch & 0xff00) | uint16(data)
}

// SetLatchHi sets the high byte of the latch. If the timer is stopped the
// counter is loaded with the latch.
func (tmr *Timer) SetLatchHi(data uint8) {
	tmr.Latch = (tmr.Latch & 0x00ff) | (uint16(data) << 8)
	if !tmr.Started() {
		tmr.load()
	}
}

func (tmr *Timer) load() {
	tmr.counter = tmr.Latch
	tmr.reference = tmr.clk.Now()
}

// the number of ticks since the reference point
func (tmr *Timer) ticks() uint64 {
	elapsed := tmr.clk.Now().Sub(tmr.reference)
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(elapsed.Nanoseconds()) * tmr.rate / float64(time.Second))
}

// the number of ticks required for the timer to underflow. a counter value of
// zero is treated as one
func (tmr *Timer) target() uint64 {
	return max(uint64(tmr.counter), 1)
}

// Counter returns the current value of the counter.
func (tmr *Timer) Counter() uint16 {
	if !tmr.Started() {
		return tmr.counter
	}
	t := tmr.ticks()
	if t >= tmr.target() {
		return 0
	}
	return tmr.counter - uint16(t)
}

// Step checks the timer for underflow. Returns true if the timer has underflowed
// since the previous call.
//
// On underflow the counter is reloaded from the latch and measuring begins
// again from the current time. A one-shot timer is stopped.
func (tmr *Timer) Step() bool {
	if !tmr.Started() {
		return false
	}

	if tmr.ticks() < tmr.target() {
		return false
	}

	tmr.load()
	if tmr.OneShot() {
		tmr.control &^= ControlStart
	}

	return true
}
