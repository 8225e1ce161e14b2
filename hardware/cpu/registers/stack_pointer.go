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

package registers

import "fmt"

// StackPage is the page of memory addressed by the stack pointer.
const StackPage = uint16(0x0100)

// StackPointer is the 8 bit SP register. The stack is always located in page
// one of memory and grows downwards.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Address returns the memory location the stack pointer refers to.
func (sp StackPointer) Address() uint16 {
	return StackPage | uint16(sp.value)
}

// Push moves the stack pointer after a value has been written to the stack.
func (sp *StackPointer) Push() {
	sp.value--
}

// Pull moves the stack pointer before a value is read from the stack.
func (sp *StackPointer) Pull() {
	sp.value++
}
