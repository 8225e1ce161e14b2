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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/logger"
)

// Sentinal error patterns returned by the C64 type. The underlying error is
// always the last value in the error chain and can be found with errors.As()
// and errors.Is().
const (
	MachineFault = "c64: %v"
	ResetFailed  = "c64: reset: %v"
)

// C64 contains all the emulated hardware of the machine.
type C64 struct {
	Prefs *preferences.Preferences
	CPU   *cpu.CPU
	Mem   *memory.Memory

	// the clock used by the CIA timers and time-of-day clocks
	Clock timer.Clock

	log logger.Sink
}

// NewC64 creates a new C64 and everything associated with the hardware.
//
// Any of the arguments can be nil. A nil prefs argument will use the default
// preferences; a nil log will discard log entries; and a nil clock will use
// the host's wall clock.
//
// The machine is in the power-on state and the firmware should be loaded
// before calling Reset().
func NewC64(prefs *preferences.Preferences, log logger.Sink, clk timer.Clock) (*C64, error) {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}
	if log == nil {
		log = logger.Discard
	}
	if clk == nil {
		clk = timer.WallClock{}
	}

	c64 := &C64{
		Prefs: prefs,
		Clock: clk,
		log:   log,
	}

	var err error

	c64.Mem, err = memory.NewMemory(prefs, log, clk)
	if err != nil {
		return nil, fmt.Errorf("c64: %w", err)
	}

	c64.CPU = cpu.NewCPU(prefs, c64.Mem)

	return c64, nil
}

func (c64 *C64) String() string {
	return fmt.Sprintf("%s\n%s", c64.CPU, c64.Mem)
}

// Reset emulates the reset line of the CPU:
//   - reset the CPU registers
//   - reset the processor port and I/O chips
//   - load the reset vector into the PC
func (c64 *C64) Reset() error {
	c64.Mem.Reset()
	c64.CPU.Reset()

	err := c64.CPU.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return curated.Errorf(ResetFailed, err)
	}

	return nil
}

// LoadProgram copies a raw binary into RAM at the origin address. The
// firmware is banked out so that the whole of the address space is RAM and
// the PC is set to the entry address.
//
// The I/O window is still visible unless the hardware.memory.bankedIO
// preference is set.
func (c64 *C64) LoadProgram(origin uint16, data []uint8, entry uint16) error {
	if int(origin)+len(data) > memory.SizeRAM {
		return curated.Errorf(MachineFault, fmt.Errorf("program too large (%d bytes at %#04x)", len(data), origin))
	}

	c64.Mem.LoadRAM(origin, data)

	// the processor port is written after the data so that the program's own
	// value for the port is replaced
	err := c64.Mem.Write(0x0000, memory.DefaultDDR)
	if err != nil {
		return curated.Errorf(MachineFault, err)
	}
	err = c64.Mem.Write(0x0001, 0x00)
	if err != nil {
		return curated.Errorf(MachineFault, err)
	}

	c64.CPU.SetPC(entry)

	return nil
}

// Interrupt the CPU. Must only be called between instructions.
func (c64 *C64) Interrupt(kind cpu.InterruptKind) error {
	err := c64.CPU.Interrupt(kind)
	if err != nil {
		return curated.Errorf(MachineFault, err)
	}
	return nil
}

// Tick services the CIA timers. CIA1 is connected to the IRQ line and CIA2 is
// connected to the NMI line.
func (c64 *C64) Tick() error {
	if c64.Mem.CIA1.Tick() {
		if err := c64.Interrupt(cpu.IRQ); err != nil {
			return err
		}
	}
	if c64.Mem.CIA2.Tick() {
		if err := c64.Interrupt(cpu.NMI); err != nil {
			return err
		}
	}
	return nil
}
