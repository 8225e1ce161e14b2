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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// the documented opcodes of the NMOS 6502. accumulator addressing for the
// shift and rotate instructions is treated as implied addressing
var opcodes = []struct {
	opcode   uint8
	operator Operator
	mode     AddressingMode
}{
	{0x69, Adc, Immediate}, {0x65, Adc, ZeroPage}, {0x75, Adc, ZeroPageIndexedX}, {0x6d, Adc, Absolute},
	{0x7d, Adc, AbsoluteIndexedX}, {0x79, Adc, AbsoluteIndexedY}, {0x61, Adc, IndexedIndirect}, {0x71, Adc, IndirectIndexed},

	{0x29, And, Immediate}, {0x25, And, ZeroPage}, {0x35, And, ZeroPageIndexedX}, {0x2d, And, Absolute},
	{0x3d, And, AbsoluteIndexedX}, {0x39, And, AbsoluteIndexedY}, {0x21, And, IndexedIndirect}, {0x31, And, IndirectIndexed},

	{0x0a, Asl, Implied}, {0x06, Asl, ZeroPage}, {0x16, Asl, ZeroPageIndexedX}, {0x0e, Asl, Absolute}, {0x1e, Asl, AbsoluteIndexedX},

	{0x90, Bcc, Relative}, {0xb0, Bcs, Relative}, {0xf0, Beq, Relative}, {0x30, Bmi, Relative},
	{0xd0, Bne, Relative}, {0x10, Bpl, Relative}, {0x50, Bvc, Relative}, {0x70, Bvs, Relative},

	{0x24, Bit, ZeroPage}, {0x2c, Bit, Absolute},

	{0x00, Brk, Implied},

	{0x18, Clc, Implied}, {0xd8, Cld, Implied}, {0x58, Cli, Implied}, {0xb8, Clv, Implied},

	{0xc9, Cmp, Immediate}, {0xc5, Cmp, ZeroPage}, {0xd5, Cmp, ZeroPageIndexedX}, {0xcd, Cmp, Absolute},
	{0xdd, Cmp, AbsoluteIndexedX}, {0xd9, Cmp, AbsoluteIndexedY}, {0xc1, Cmp, IndexedIndirect}, {0xd1, Cmp, IndirectIndexed},

	{0xe0, Cpx, Immediate}, {0xe4, Cpx, ZeroPage}, {0xec, Cpx, Absolute},
	{0xc0, Cpy, Immediate}, {0xc4, Cpy, ZeroPage}, {0xcc, Cpy, Absolute},

	{0xc6, Dec, ZeroPage}, {0xd6, Dec, ZeroPageIndexedX}, {0xce, Dec, Absolute}, {0xde, Dec, AbsoluteIndexedX},
	{0xca, Dex, Implied}, {0x88, Dey, Implied},

	{0x49, Eor, Immediate}, {0x45, Eor, ZeroPage}, {0x55, Eor, ZeroPageIndexedX}, {0x4d, Eor, Absolute},
	{0x5d, Eor, AbsoluteIndexedX}, {0x59, Eor, AbsoluteIndexedY}, {0x41, Eor, IndexedIndirect}, {0x51, Eor, IndirectIndexed},

	{0xe6, Inc, ZeroPage}, {0xf6, Inc, ZeroPageIndexedX}, {0xee, Inc, Absolute}, {0xfe, Inc, AbsoluteIndexedX},
	{0xe8, Inx, Implied}, {0xc8, Iny, Implied},

	{0x4c, Jmp, Absolute}, {0x6c, Jmp, Indirect},
	{0x20, Jsr, Absolute},

	{0xa9, Lda, Immediate}, {0xa5, Lda, ZeroPage}, {0xb5, Lda, ZeroPageIndexedX}, {0xad, Lda, Absolute},
	{0xbd, Lda, AbsoluteIndexedX}, {0xb9, Lda, AbsoluteIndexedY}, {0xa1, Lda, IndexedIndirect}, {0xb1, Lda, IndirectIndexed},

	{0xa2, Ldx, Immediate}, {0xa6, Ldx, ZeroPage}, {0xb6, Ldx, ZeroPageIndexedY}, {0xae, Ldx, Absolute}, {0xbe, Ldx, AbsoluteIndexedY},
	{0xa0, Ldy, Immediate}, {0xa4, Ldy, ZeroPage}, {0xb4, Ldy, ZeroPageIndexedX}, {0xac, Ldy, Absolute}, {0xbc, Ldy, AbsoluteIndexedX},

	{0x4a, Lsr, Implied}, {0x46, Lsr, ZeroPage}, {0x56, Lsr, ZeroPageIndexedX}, {0x4e, Lsr, Absolute}, {0x5e, Lsr, AbsoluteIndexedX},

	{0xea, Nop, Implied},

	{0x09, Ora, Immediate}, {0x05, Ora, ZeroPage}, {0x15, Ora, ZeroPageIndexedX}, {0x0d, Ora, Absolute},
	{0x1d, Ora, AbsoluteIndexedX}, {0x19, Ora, AbsoluteIndexedY}, {0x01, Ora, IndexedIndirect}, {0x11, Ora, IndirectIndexed},

	{0x48, Pha, Implied}, {0x08, Php, Implied}, {0x68, Pla, Implied}, {0x28, Plp, Implied},

	{0x2a, Rol, Implied}, {0x26, Rol, ZeroPage}, {0x36, Rol, ZeroPageIndexedX}, {0x2e, Rol, Absolute}, {0x3e, Rol, AbsoluteIndexedX},
	{0x6a, Ror, Implied}, {0x66, Ror, ZeroPage}, {0x76, Ror, ZeroPageIndexedX}, {0x6e, Ror, Absolute}, {0x7e, Ror, AbsoluteIndexedX},

	{0x40, Rti, Implied}, {0x60, Rts, Implied},

	{0xe9, Sbc, Immediate}, {0xe5, Sbc, ZeroPage}, {0xf5, Sbc, ZeroPageIndexedX}, {0xed, Sbc, Absolute},
	{0xfd, Sbc, AbsoluteIndexedX}, {0xf9, Sbc, AbsoluteIndexedY}, {0xe1, Sbc, IndexedIndirect}, {0xf1, Sbc, IndirectIndexed},

	{0x38, Sec, Implied}, {0xf8, Sed, Implied}, {0x78, Sei, Implied},

	{0x85, Sta, ZeroPage}, {0x95, Sta, ZeroPageIndexedX}, {0x8d, Sta, Absolute}, {0x9d, Sta, AbsoluteIndexedX},
	{0x99, Sta, AbsoluteIndexedY}, {0x81, Sta, IndexedIndirect}, {0x91, Sta, IndirectIndexed},
	{0x86, Stx, ZeroPage}, {0x96, Stx, ZeroPageIndexedY}, {0x8e, Stx, Absolute},
	{0x84, Sty, ZeroPage}, {0x94, Sty, ZeroPageIndexedX}, {0x8c, Sty, Absolute},

	{0xaa, Tax, Implied}, {0xa8, Tay, Implied}, {0xba, Tsx, Implied},
	{0x8a, Txa, Implied}, {0x9a, Txs, Implied}, {0x98, Tya, Implied},
}

// the table is built once and shared by every caller of GetDefinitions()
var definitions []*Definition

func init() {
	definitions = make([]*Definition, 256)
	for _, o := range opcodes {
		if definitions[o.opcode] != nil {
			panic(fmt.Sprintf("instructions: duplicate definition for opcode %02x", o.opcode))
		}
		definitions[o.opcode] = &Definition{
			OpCode:         o.opcode,
			Operator:       o.operator,
			Bytes:          o.mode.Bytes(),
			AddressingMode: o.mode,
			Effect:         o.operator.effect(o.mode),
		}
	}
}

// GetDefinitions returns the table of instruction definitions. The table has
// 256 entries, indexed by opcode. Undefined opcodes have a nil entry. The table
// should be treated as read-only.
func GetDefinitions() []*Definition {
	return definitions
}
