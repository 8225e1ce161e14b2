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

// Package cpubus defines the interface through which the CPU accesses memory,
// along with the addresses of the 6502 vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The C64 memory type implements this interface and maps the read/write
// address to the correct memory area -- meaning that CPU access need not care
// which part of memory it is writing to.
//
// An error matching the AddressError pattern is not fatal. The value returned
// by Read() in that instance is zero.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine. Peek() returns the value that a Read() would return
// without the side effects of a Read(). Poke() writes to an address without
// triggering side effects.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// The addresses of the three 6502 vectors.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// AddressError is the curated error pattern for memory accesses that could
// not be satisfied. For example, addresses beyond the end of a ROM image that
// is smaller than the area it is mapped into.
const AddressError = "inaccessible address (%#04x)"
