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

package cpu

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu/execution"
	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/preferences"
)

// CPU implements the 6510 as found in the C64. Register logic is implemented
// by the Register type in the registers sub-package.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// the result of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	// trace is nil when tracing is disabled
	trace *execution.History
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// prefs argument can be nil, in which case the default preferences are used.
//
// The CPU is in the power-on state. The PC is zero and should be loaded with
// LoadPCIndirect(cpubus.Reset) or SetPC() before execution begins.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}

	mc := &CPU{
		prefs:        prefs,
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0xff),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}

	mc.EnableTrace(prefs.TraceSize.Get().(int))

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers to the power-on state. Does not load PC
// with RESET vector. Use cpu.LoadPCIndirect(cpubus.Reset) when appropriate.
//
// The trace history is cleared but remains enabled.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	if mc.trace != nil {
		mc.trace.Clear()
	}
}

// SetPC loads the PC with the address.
func (mc *CPU) SetPC(address uint16) {
	mc.PC.Load(address)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// Registers returns a copy of the register values.
func (mc *CPU) Registers() execution.Registers {
	return execution.Registers{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		SP:     mc.SP.Value(),
		Status: mc.Status.Value(),
	}
}

// EnableTrace keeps a history of the most recent instructions. The size
// argument is the number of instructions to keep. A size of less than one
// disables the trace.
func (mc *CPU) EnableTrace(size int) {
	mc.trace = execution.NewHistory(size)
}

// Trace returns a copy of the trace history, oldest entry first. Returns nil if
// tracing is disabled.
func (mc *CPU) Trace() []execution.Entry {
	if mc.trace == nil {
		return nil
	}
	return mc.trace.Entries()
}

// DumpTrace writes the trace history to the writer.
func (mc *CPU) DumpTrace(w io.Writer) {
	if mc.trace == nil {
		io.WriteString(w, "trace is not enabled\n")
		return
	}
	mc.trace.Write(w)
}

// read8Bit returns 8bit value from the specified address. an AddressError
// from the memory is not fatal and is noted in LastResult
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val, err := mc.mem.Read(address)
	if err != nil {
		if !curated.Is(err, cpubus.AddressError) {
			return 0, err
		}
		mc.LastResult.Error = err.Error()
		val = 0
	}
	return val, nil
}

// write8Bit writes 8 bits to the specified address
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	err := mc.mem.Write(address, value)
	if err != nil {
		if !curated.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}
	return nil
}

// read16Bit returns a little-endian 16bit value from the specified address.
// the address of the high byte wraps at the top of memory
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage returns a 16bit pointer from the zero page. the address
// of the high byte wraps within the zero page
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// advancePC moves the PC on by one. wrapping past the top of memory is a
// fault
func (mc *CPU) advancePC() error {
	if mc.PC.Add(1) {
		return &Fault{
			Category: ProgramCounterOverflow,
			PC:       mc.LastResult.Address,
			Opcode:   mc.LastResult.OpCode,
		}
	}
	return nil
}

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}

	err = mc.advancePC()
	if err != nil {
		return 0, err
	}

	mc.LastResult.ByteCount++

	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	v := (uint16(hi) << 8) | uint16(lo)
	mc.LastResult.InstructionData = v

	return v, nil
}

// push a value onto the stack
func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value)
	if err != nil {
		return err
	}
	mc.SP.Push()
	return nil
}

// pull a value from the stack
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Pull()
	return mc.read8Bit(mc.SP.Address())
}

// push the PC onto the stack, high byte first
func (mc *CPU) pushPC(pc uint16) error {
	err := mc.push(uint8(pc >> 8))
	if err != nil {
		return err
	}
	return mc.push(uint8(pc))
}

// pull the PC from the stack, low byte first
func (mc *CPU) pullPC() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// setNZ sets the sign and zero flags according to the register value
func (mc *CPU) setNZ(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}
