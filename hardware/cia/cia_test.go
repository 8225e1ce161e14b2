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

package cia_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cia"
	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/test"
)

const rate = 1000000.0

func newCIA() (*cia.CIA, *timer.ManualClock, *logger.Logger) {
	clk := timer.NewManualClock()
	log := logger.NewLogger(100)
	return cia.NewCIA("CIA1", clk, rate, log, logger.Allow), clk, log
}

func TestPorts(t *testing.T) {
	c, _, _ := newCIA()

	// inputs float high
	test.ExpectEquality(t, c.Read(cia.PRA), uint8(0xff))

	c.Write(cia.DDRA, 0x0f)
	c.Write(cia.PRA, 0x05)
	test.ExpectEquality(t, c.Read(cia.PRA), uint8(0xf5))
	test.ExpectEquality(t, c.Read(cia.DDRA), uint8(0x0f))

	// registers are mirrored
	test.ExpectEquality(t, c.Read(cia.DDRA+cia.NumRegisters), uint8(0x0f))
}

func TestTimerInterrupt(t *testing.T) {
	c, clk, _ := newCIA()

	c.Write(cia.TALO, 0x00)
	c.Write(cia.TAHI, 0x01)
	c.Write(cia.ICR, cia.ICRSet|cia.CauseTimerA)
	test.ExpectEquality(t, c.Mask(), uint8(cia.CauseTimerA))

	c.Write(cia.CRA, timer.ControlStart)

	clk.AdvanceTicks(0xff, rate)
	test.ExpectEquality(t, c.Tick(), false)
	test.ExpectEquality(t, c.Read(cia.TALO), uint8(0x01))
	test.ExpectEquality(t, c.Read(cia.TAHI), uint8(0x00))

	clk.AdvanceTicks(1, rate)
	test.ExpectEquality(t, c.Tick(), true)

	// cause is set once per underflow
	test.ExpectEquality(t, c.Tick(), false)
	test.ExpectEquality(t, c.Cause(), uint8(cia.CauseTimerA))

	// reading the ICR clears the cause
	test.ExpectEquality(t, c.Read(cia.ICR), uint8(cia.ICRSet|cia.CauseTimerA))
	test.ExpectEquality(t, c.Read(cia.ICR), uint8(0x00))
}

func TestMaskedCause(t *testing.T) {
	c, clk, _ := newCIA()

	c.Write(cia.TBLO, 0x10)
	c.Write(cia.TBHI, 0x00)
	c.Write(cia.CRB, timer.ControlStart|timer.ControlOneShot)

	clk.AdvanceTicks(0x10, rate)
	test.ExpectEquality(t, c.Tick(), false)

	// the cause is latched even though the interrupt is not enabled
	test.ExpectEquality(t, c.Read(cia.ICR), uint8(cia.CauseTimerB))
	test.ExpectEquality(t, c.Read(cia.CRB)&timer.ControlStart, uint8(0))
}

func TestMaskWrites(t *testing.T) {
	c, _, _ := newCIA()

	c.Write(cia.ICR, cia.ICRSet|cia.CauseTimerA|cia.CauseTimerB)
	test.ExpectEquality(t, c.Mask(), uint8(0x03))
	c.Write(cia.ICR, cia.CauseTimerA)
	test.ExpectEquality(t, c.Mask(), uint8(0x02))
}

func TestTODWriteIsLogged(t *testing.T) {
	c, _, log := newCIA()

	c.Write(cia.TODHours, 0x12)
	test.ExpectEquality(t, c.Read(cia.TODTenths), uint8(0x00))
	test.ExpectEquality(t, c.Read(cia.TODHours), uint8(0x01))

	n := 0
	log.BorrowLog(func(e []logger.Entry) {
		n = len(e)
	})
	test.ExpectEquality(t, n, 1)
}

func TestReset(t *testing.T) {
	c, _, _ := newCIA()

	c.Write(cia.DDRB, 0xff)
	c.Write(cia.ICR, cia.ICRSet|cia.CauseTimerB)
	c.Write(cia.CRA, timer.ControlStart)
	c.Reset()

	test.ExpectEquality(t, c.Read(cia.DDRB), uint8(0x00))
	test.ExpectEquality(t, c.Mask(), uint8(0x00))
	test.ExpectEquality(t, c.TimerA.Started(), false)
}
