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
	"github.com/jetsetilly/gopher64/hardware/cpu/execution"
	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
)

// ExecuteInstruction steps CPU forward one instruction. The PC after the
// instruction (including any branch or jump) is in the PC field.
//
// Errors from the memory that do not match the cpubus.AddressError pattern are
// returned as is. Otherwise, errors are of type *Fault.
//
// The LastResult field is valid even when an error is returned.
func (mc *CPU) ExecuteInstruction() error {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	err := mc.executeInstruction()
	mc.LastResult.Final = true

	if mc.trace != nil {
		mc.trace.Push(execution.Entry{
			Result:    mc.LastResult,
			Registers: mc.Registers(),
		})
	}

	if err != nil {
		return err
	}

	if mc.PC.Address() == mc.LastResult.Address {
		return &Fault{
			Category: SelfLoop,
			PC:       mc.PC.Address(),
			Opcode:   mc.LastResult.OpCode,
		}
	}

	return nil
}

func (mc *CPU) executeInstruction() error {
	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	mc.LastResult.OpCode = opcode

	defn := mc.instructions[opcode]
	if defn == nil {
		return &Fault{
			Category: UnknownOpcode,
			PC:       mc.LastResult.Address,
			Opcode:   opcode,
		}
	}
	mc.LastResult.Defn = defn

	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address uint16

	// value is read from the program for immediate mode, and from memory for
	// all other modes that read memory. for read-modify-write instructions,
	// the value is changed by the operator and written back to memory
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand. accumulator addressing for shift and rotate
		// instructions is also handled here

	case instructions.Immediate:
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		var offset uint8
		offset, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(offset)

		// the offset is signed and relative to the instruction following the
		// branch
		address = mc.PC.Address() + uint16(int16(int8(offset)))

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}

	case instructions.ZeroPage:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp)

	case instructions.Indirect:
		// used only by JMP
		var indirectAddress uint16
		indirectAddress, err = mc.read16BitPC()
		if err != nil {
			return err
		}

		// the high byte of the address is read from the same page as the low
		// byte, even if the low byte is at the end of the page
		hiAddress := (indirectAddress & 0xff00) | uint16(uint8(indirectAddress)+1)
		if hiAddress != indirectAddress+1 {
			mc.LastResult.CPUBug = "indirect addressing bug"
		}

		var lo, hi uint8
		lo, err = mc.read8Bit(indirectAddress)
		if err != nil {
			return err
		}
		hi, err = mc.read8Bit(hiAddress)
		if err != nil {
			return err
		}
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect: // (zp,X)
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		// the index is added to the zero page address and the result wraps
		// within the zero page
		address, err = mc.read16BitZeroPage(zp + mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed: // (zp),Y
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		var indirectAddress uint16
		indirectAddress, err = mc.read16BitZeroPage(zp)
		if err != nil {
			return err
		}
		address = indirectAddress + uint16(mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address += uint16(mc.X.Value())

	case instructions.AbsoluteIndexedY:
		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address += uint16(mc.Y.Value())

	case instructions.ZeroPageIndexedX:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.Y.Value())
	}

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate:
	default:
		mc.LastResult.EffectiveAddress = address

		// read value from memory for instructions that need it
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Pha:
		err = mc.push(mc.A.Value())

	case instructions.Pla:
		value, err = mc.pull()
		mc.A.Load(value)
		mc.setNZ(mc.A)

	case instructions.Php:
		// the break bit and the unused bit are always set when the status
		// register is pushed by PHP
		err = mc.push(mc.Status.Value() | registers.BreakBit | registers.UnusedBit)

	case instructions.Plp:
		value, err = mc.pull()
		mc.Status.Load(value &^ (registers.BreakBit | registers.UnusedBit))

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X)

	case instructions.Txs:
		// does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setNZ(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setNZ(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setNZ(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setNZ(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setNZ(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setNZ(mc.Y)

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setNZ(mc.X)

	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setNZ(mc.Y)

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setNZ(mc.X)

	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setNZ(mc.Y)

	case instructions.Asl:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			mc.acc8.Load(value)
			r = &mc.acc8
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ASL()
		mc.setNZ(*r)
		value = r.Value()

	case instructions.Lsr:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			mc.acc8.Load(value)
			r = &mc.acc8
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.LSR()
		mc.setNZ(*r)
		value = r.Value()

	case instructions.Rol:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			mc.acc8.Load(value)
			r = &mc.acc8
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setNZ(*r)
		value = r.Value()

	case instructions.Ror:
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			mc.acc8.Load(value)
			r = &mc.acc8
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setNZ(*r)
		value = r.Value()

	case instructions.Inc:
		value++
		mc.acc8.Load(value)
		mc.setNZ(mc.acc8)

	case instructions.Dec:
		value--
		mc.acc8.Load(value)
		mc.setNZ(mc.acc8)

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry = mc.A.AddDecimal(value, mc.Status.Carry)
			mc.Status.Overflow = false
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		}
		mc.setNZ(mc.A)

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			mc.Status.Carry = mc.A.SubtractDecimal(value, mc.Status.Carry)
			mc.Status.Overflow = false
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		}
		mc.setNZ(mc.A)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(value)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Sign = value&registers.SignBit == registers.SignBit
		mc.Status.Overflow = value&registers.OverflowBit == registers.OverflowBit

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		// instruction
		err = mc.pushPC(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rts:
		var pc uint16
		pc, err = mc.pullPC()
		if err != nil {
			return err
		}
		mc.PC.Load(pc + 1)

	case instructions.Rti:
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load((value &^ registers.UnusedBit) | registers.BreakBit)

		var pc uint16
		pc, err = mc.pullPC()
		if err != nil {
			return err
		}
		mc.PC.Load(pc)

	case instructions.Brk:
		// the byte following the BRK opcode is skipped. the byte is not part
		// of the instruction so ByteCount is not changed
		err = mc.advancePC()
		if err != nil {
			return err
		}
		err = mc.interrupt(BRK)
	}

	if err != nil {
		return err
	}

	// write altered value back to memory for RMW instructions
	if defn.Effect == instructions.RMW {
		err = mc.write8Bit(address, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// compare a register with a value. the carry flag is set if the register
// value is greater than or equal to the value
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.setNZ(mc.acc8)
}

// branch to address if flag is true
func (mc *CPU) branch(flag bool, address uint16) {
	if flag {
		mc.PC.Load(address)
	}
}
