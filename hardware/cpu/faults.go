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

import "fmt"

// FaultCategory describes the reason for a Fault.
type FaultCategory int

// List of fault categories.
const (
	// the opcode has no definition
	UnknownOpcode FaultCategory = iota

	// the PC is the same after the instruction as it was before. this is
	// usually an intentional trap in a test program
	SelfLoop

	// the PC has been incremented past the top of memory while fetching an
	// instruction
	ProgramCounterOverflow
)

func (c FaultCategory) String() string {
	switch c {
	case UnknownOpcode:
		return "unknown opcode"
	case SelfLoop:
		return "self-loop"
	case ProgramCounterOverflow:
		return "program counter overflow"
	}
	return "unknown fault"
}

// Fault is returned by ExecuteInstruction() when the CPU can not continue
// normally.
type Fault struct {
	Category FaultCategory

	// for UnknownOpcode this is the address of the opcode. for the other
	// categories it is the value of the PC when the fault was detected
	PC uint16

	Opcode uint8
}

func (f *Fault) Error() string {
	switch f.Category {
	case UnknownOpcode:
		return fmt.Sprintf("cpu: %s (%#02x) at %#04x", f.Category, f.Opcode, f.PC)
	}
	return fmt.Sprintf("cpu: %s at %#04x", f.Category, f.PC)
}
