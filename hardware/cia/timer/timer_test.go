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

package timer_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/test"
)

// one tick per microsecond makes the arithmetic in these tests easy to follow
const rate = 1000000.0

func TestManualClock(t *testing.T) {
	clk := timer.NewManualClock()
	start := clk.Now()
	clk.Advance(time.Second)
	test.ExpectEquality(t, clk.Now().Sub(start), time.Second)
	clk.AdvanceTicks(100, rate)
	test.ExpectEquality(t, clk.Now().Sub(start), time.Second+100*time.Microsecond)
}

func TestStopped(t *testing.T) {
	clk := timer.NewManualClock()
	tmr := timer.NewTimer("TA", clk, rate)

	tmr.SetLatchLo(0x10)
	tmr.SetLatchHi(0x00)
	test.ExpectEquality(t, tmr.Counter(), uint16(0x10))

	clk.Advance(time.Second)
	test.ExpectEquality(t, tmr.Step(), false)
	test.ExpectEquality(t, tmr.Counter(), uint16(0x10))
}

func TestContinuous(t *testing.T) {
	clk := timer.NewManualClock()
	tmr := timer.NewTimer("TA", clk, rate)

	tmr.SetLatchLo(100)
	tmr.SetLatchHi(0)
	tmr.SetControl(timer.ControlStart)
	test.ExpectEquality(t, tmr.Started(), true)

	clk.AdvanceTicks(40, rate)
	test.ExpectEquality(t, tmr.Step(), false)
	test.ExpectEquality(t, tmr.Counter(), uint16(60))

	clk.AdvanceTicks(60, rate)
	test.ExpectEquality(t, tmr.Step(), true)

	// the timer reloads and underflows once per step
	test.ExpectEquality(t, tmr.Step(), false)
	test.ExpectEquality(t, tmr.Counter(), uint16(100))

	clk.AdvanceTicks(100, rate)
	test.ExpectEquality(t, tmr.Step(), true)
	test.ExpectEquality(t, tmr.Started(), true)
}

func TestSetRate(t *testing.T) {
	clk := timer.NewManualClock()
	tmr := timer.NewTimer("TA", clk, rate)

	// a stopped timer only takes the new rate
	tmr.SetRate(rate * 2)
	tmr.SetRate(rate)

	tmr.SetLatchLo(100)
	tmr.SetLatchHi(0)
	tmr.SetControl(timer.ControlStart)

	clk.AdvanceTicks(40, rate)
	tmr.SetRate(rate * 2)
	test.ExpectEquality(t, tmr.Counter(), uint16(60))

	// ticks after the change are counted at the new rate
	clk.Advance(5 * time.Microsecond)
	test.ExpectEquality(t, tmr.Counter(), uint16(50))

	clk.Advance(25 * time.Microsecond)
	test.ExpectEquality(t, tmr.Step(), true)
	test.ExpectEquality(t, tmr.Counter(), uint16(100))
}

func TestOneShot(t *testing.T) {
	clk := timer.NewManualClock()
	tmr := timer.NewTimer("TB", clk, rate)

	tmr.SetLatchLo(10)
	tmr.SetLatchHi(0)
	tmr.SetControl(timer.ControlStart | timer.ControlOneShot)

	clk.AdvanceTicks(10, rate)
	test.ExpectEquality(t, tmr.Step(), true)
	test.ExpectEquality(t, tmr.Started(), false)

	clk.AdvanceTicks(10, rate)
	test.ExpectEquality(t, tmr.Step(), false)
}

func TestZeroLatch(t *testing.T) {
	clk := timer.NewManualClock()
	tmr := timer.NewTimer("TA", clk, rate)
	tmr.SetControl(timer.ControlStart)

	test.ExpectEquality(t, tmr.Step(), false)
	clk.AdvanceTicks(1, rate)
	test.ExpectEquality(t, tmr.Step(), true)
}

func TestStopFreezesCounter(t *testing.T) {
	clk := timer.NewManualClock()
	tmr := timer.NewTimer("TA", clk, rate)

	tmr.SetLatchLo(0x00)
	tmr.SetLatchHi(0x01)
	tmr.SetControl(timer.ControlStart)
	clk.AdvanceTicks(0x50, rate)
	tmr.SetControl(0)
	test.ExpectEquality(t, tmr.Counter(), uint16(0xb0))

	clk.Advance(time.Second)
	test.ExpectEquality(t, tmr.Counter(), uint16(0xb0))

	// restarting continues from the frozen value
	tmr.SetControl(timer.ControlStart)
	clk.AdvanceTicks(0xb0, rate)
	test.ExpectEquality(t, tmr.Step(), true)
}

func TestForceLoad(t *testing.T) {
	clk := timer.NewManualClock()
	tmr := timer.NewTimer("TA", clk, rate)

	tmr.SetLatchLo(50)
	tmr.SetLatchHi(0)
	tmr.SetControl(timer.ControlStart)
	clk.AdvanceTicks(30, rate)

	// the latch change does not affect a running timer until forced
	tmr.SetLatchLo(200)
	test.ExpectEquality(t, tmr.Counter(), uint16(20))

	tmr.SetControl(timer.ControlStart | timer.ControlForceLoad)
	test.ExpectEquality(t, tmr.Counter(), uint16(200))
	test.ExpectEquality(t, tmr.Control(), uint8(timer.ControlStart))
}
