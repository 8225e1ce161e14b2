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

// Package instructions defines the instruction set of the 6502. Each opcode is
// described by a Definition, which pairs the Operator (what the instruction
// does) with the AddressingMode (how the instruction finds its operand).
//
// The GetDefinitions() function returns a table of 256 entries, indexed by
// opcode. Undocumented opcodes have a nil entry.
package instructions
