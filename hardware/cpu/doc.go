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

// Package cpu emulates the 6510 CPU found in the Commodore 64. The 6510 is a
// 6502 with an I/O port at addresses 0x0000 and 0x0001. The port is emulated
// by the memory package. As far as the instruction set is concerned the CPU is
// an NMOS 6502 and only the documented instructions are implemented.
//
// The CPU is not cycle accurate. ExecuteInstruction() executes one complete
// instruction and the number of cycles taken is not counted.
//
// Instructions are decoded with the definitions table in the instructions
// package. The addressing mode decides how the operand is found and the
// operator decides what is done with it.
//
// The result of the most recent instruction is kept in the LastResult field.
// A fixed length history of results can be kept with EnableTrace().
//
// Interrupts are raised with the Interrupt() function and only ever between
// instructions. A BRK instruction is treated as an interrupt that cannot be
// masked.
//
// ExecuteInstruction() returns a Fault when the CPU cannot continue. A Fault
// can be inspected with errors.As().
package cpu
