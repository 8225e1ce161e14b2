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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/logger"
)

const (
	kernalOrigin = uint16(0xe000)
	irqHandler   = uint16(0xe100)
	nmiHandler   = uint16(0xe200)
)

// kernal creates a minimal KERNAL image. the reset routine enables interrupts
// and loops forever
func kernal() []uint8 {
	rom := make([]uint8, 0x2000)

	// CLI; NOP; JMP $e001
	copy(rom, []uint8{0x58, 0xea, 0x4c, 0x01, 0xe0})

	// the vectors used by default. IRQ at 0xfffa and NMI at 0xfffe
	rom[0x1ffa] = uint8(irqHandler & 0xff)
	rom[0x1ffb] = uint8(irqHandler >> 8)
	rom[0x1ffc] = uint8(kernalOrigin & 0xff)
	rom[0x1ffd] = uint8(kernalOrigin >> 8)
	rom[0x1ffe] = uint8(nmiHandler & 0xff)
	rom[0x1fff] = uint8(nmiHandler >> 8)

	// NOP in both handlers
	rom[irqHandler-kernalOrigin] = 0xea
	rom[nmiHandler-kernalOrigin] = 0xea

	return rom
}

func newC64(t *testing.T) (*hardware.C64, *timer.ManualClock) {
	t.Helper()
	is := is.New(t)

	clk := timer.NewManualClock()
	c64, err := hardware.NewC64(nil, logger.NewLogger(100), clk)
	is.NoErr(err)
	is.NoErr(c64.Mem.LoadKERNAL(kernal()))
	is.NoErr(c64.Reset())

	return c64, clk
}

func TestReset(t *testing.T) {
	is := is.New(t)
	c64, _ := newC64(t)

	is.Equal(c64.CPU.PC.Address(), kernalOrigin)
	is.Equal(c64.CPU.SP.Value(), uint8(0xff))

	is.NoErr(c64.Step())
	is.NoErr(c64.Step())
	is.Equal(c64.CPU.PC.Address(), kernalOrigin+2)
	is.True(!c64.CPU.Status.InterruptDisable)

	// reset returns the machine to the start of the KERNAL
	is.NoErr(c64.Reset())
	is.Equal(c64.CPU.PC.Address(), kernalOrigin)
}

func TestTimerIRQ(t *testing.T) {
	is := is.New(t)
	c64, clk := newC64(t)
	is.NoErr(c64.Step())

	rate, err := clocks.Phi2("PAL")
	is.NoErr(err)

	// timer A latch of 0x0010. enable the timer A interrupt and start the
	// timer
	is.NoErr(c64.Mem.Write(0xdc04, 0x10))
	is.NoErr(c64.Mem.Write(0xdc05, 0x00))
	is.NoErr(c64.Mem.Write(0xdc0d, 0x81))
	is.NoErr(c64.Mem.Write(0xdc0e, 0x01))

	// not enough time has passed
	is.NoErr(c64.Tick())
	is.Equal(c64.CPU.PC.Address(), kernalOrigin+1)

	clk.AdvanceTicks(0x20, rate)
	is.NoErr(c64.Tick())
	is.Equal(c64.CPU.PC.Address(), irqHandler)
	is.True(c64.CPU.Status.InterruptDisable)

	// reading the ICR clears the cause
	v, err := c64.Mem.Read(0xdc0d)
	is.NoErr(err)
	is.Equal(v, uint8(0x81))
	v, err = c64.Mem.Read(0xdc0d)
	is.NoErr(err)
	is.Equal(v, uint8(0x00))
}

func TestTimerNMI(t *testing.T) {
	is := is.New(t)
	c64, clk := newC64(t)

	rate, err := clocks.Phi2("PAL")
	is.NoErr(err)

	// timer B of CIA2 in one-shot mode
	is.NoErr(c64.Mem.Write(0xdd06, 0x08))
	is.NoErr(c64.Mem.Write(0xdd07, 0x00))
	is.NoErr(c64.Mem.Write(0xdd0d, 0x82))
	is.NoErr(c64.Mem.Write(0xdd0f, 0x09))

	// the NMI can't be masked
	c64.CPU.Status.InterruptDisable = true

	clk.AdvanceTicks(0x10, rate)
	is.NoErr(c64.Tick())
	is.Equal(c64.CPU.PC.Address(), nmiHandler)
}

func TestFault(t *testing.T) {
	is := is.New(t)

	c64, err := hardware.NewC64(nil, nil, timer.NewManualClock())
	is.NoErr(err)

	// NOP; unknown opcode
	is.NoErr(c64.LoadProgram(0x0800, []uint8{0xea, 0x02}, 0x0800))
	is.NoErr(c64.Step())

	err = c64.Step()
	is.True(curated.Is(err, hardware.MachineFault))

	var f *cpu.Fault
	is.True(errors.As(err, &f))
	is.Equal(f.Category, cpu.UnknownOpcode)
	is.Equal(f.PC, uint16(0x0801))
}

func TestRun(t *testing.T) {
	is := is.New(t)

	c64, err := hardware.NewC64(nil, nil, timer.NewManualClock())
	is.NoErr(err)

	// LDA #$05; STA $0400; LDA #$0e; STA $d020; JMP $080a
	program := []uint8{0xa9, 0x05, 0x8d, 0x00, 0x04, 0xa9, 0x0e, 0x8d, 0x20, 0xd0, 0x4c, 0x0a, 0x08}
	is.NoErr(c64.LoadProgram(0x0800, program, 0x0800))

	// the firmware is banked out. only the cassette sense bit is high
	is.Equal(c64.Mem.Config().Port, uint8(0x10))

	err = c64.Run(nil)

	var f *cpu.Fault
	is.True(errors.As(err, &f))
	is.Equal(f.Category, cpu.SelfLoop)
	is.Equal(f.PC, uint16(0x080a))

	s := c64.Snapshot()
	is.Equal(s.Screen[0], uint8(0x05))
	is.Equal(s.Border, uint8(0x0e))
	is.Equal(s.Registers.A, uint8(0x0e))
}

func TestRunForInstructionCount(t *testing.T) {
	is := is.New(t)
	c64, _ := newC64(t)

	// nothing is executed for a count of zero or less
	is.NoErr(c64.RunForInstructionCount(0, nil))
	is.Equal(c64.CPU.PC.Address(), kernalOrigin)
	is.NoErr(c64.RunForInstructionCount(-1, nil))
	is.Equal(c64.CPU.PC.Address(), kernalOrigin)

	is.NoErr(c64.RunForInstructionCount(1, nil))
	is.Equal(c64.CPU.PC.Address(), kernalOrigin+1)

	is.NoErr(c64.RunForInstructionCount(2, nil))
	is.Equal(c64.CPU.PC.Address(), kernalOrigin+1)

	var count int
	is.NoErr(c64.Run(func() (bool, error) {
		count++
		return count < 10, nil
	}))
	is.Equal(count, 10)
}

func TestLoadProgramTooLarge(t *testing.T) {
	is := is.New(t)

	c64, err := hardware.NewC64(nil, nil, timer.NewManualClock())
	is.NoErr(err)

	err = c64.LoadProgram(0xff00, make([]uint8, 0x200), 0xff00)
	is.True(curated.Is(err, hardware.MachineFault))
}
