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
	"sync"
	"time"
)

// Clock is the source of time for the timers and for the time-of-day clock.
type Clock interface {
	Now() time.Time
}

// WallClock is a Clock that returns the real time.
type WallClock struct{}

// Now implements the Clock interface.
func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves forward when told to. Safe for
// concurrent use.
type ManualClock struct {
	crit sync.Mutex
	now  time.Time
}

// NewManualClock is the preferred method of initialisation for the ManualClock
// type. The clock starts at an arbitrary but fixed point in time.
func NewManualClock() *ManualClock {
	return &ManualClock{
		now: time.Date(1982, time.August, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Now implements the Clock interface.
func (c *ManualClock) Now() time.Time {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.now
}

// Advance moves the clock forward by the specified duration.
func (c *ManualClock) Advance(d time.Duration) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.now = c.now.Add(d)
}

// AdvanceTicks moves the clock forward by the time it takes for the number of
// ticks to pass at the specified rate (in Hz). The duration is rounded up to
// the nearest nanosecond.
func (c *ManualClock) AdvanceTicks(ticks int, rate float64) {
	ns := float64(ticks) * float64(time.Second) / rate
	d := time.Duration(ns)
	if float64(d) < ns {
		d++
	}
	c.Advance(d)
}
