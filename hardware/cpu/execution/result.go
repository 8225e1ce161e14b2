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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the opcode was not
	// recognised
	Defn *instructions.Definition

	// the opcode byte. this is required in addition to the Defn field because
	// the definition of an unknown opcode will be nil
	OpCode uint8

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand bytes of the instruction, if any. one byte operands are
	// stored in the low byte
	InstructionData uint16

	// the address that was resolved by the addressing mode. zero for implied
	// and immediate addressing
	EffectiveAddress uint16

	// whether this data has been finalised
	Final bool

	// description of any quirk of the 6502 that affected the instruction
	CPUBug string

	// any non-fatal memory error that occurred during the instruction. the
	// value read from an inaccessible address is zero
	Error string
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x  ", r.Address))

	if r.Defn == nil {
		s.WriteString(fmt.Sprintf("%02x    ???", r.OpCode))
		return s.String()
	}

	// raw bytes
	switch r.ByteCount {
	case 2:
		s.WriteString(fmt.Sprintf("%02x %02x     ", r.OpCode, uint8(r.InstructionData)))
	case 3:
		s.WriteString(fmt.Sprintf("%02x %02x %02x  ", r.OpCode, uint8(r.InstructionData), uint8(r.InstructionData>>8)))
	default:
		s.WriteString(fmt.Sprintf("%02x        ", r.OpCode))
	}

	s.WriteString(r.Defn.Operator.String())

	operand := r.Operand()
	if operand != "" {
		s.WriteRune(' ')
		s.WriteString(operand)
	}

	if r.CPUBug != "" {
		s.WriteString(fmt.Sprintf("  (%s)", r.CPUBug))
	}

	if r.Error != "" {
		s.WriteString(fmt.Sprintf("  [%s]", r.Error))
	}

	return s.String()
}

// Operand returns the operand of the instruction in conventional assembler
// notation.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", r.EffectiveAddress)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}

	return ""
}
