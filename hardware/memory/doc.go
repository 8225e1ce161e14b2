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

// Package memory implements the address space of the C64. The CPU accesses
// memory through the Read() and Write() functions, which satisfy the
// cpubus.Memory interface.
//
//	                         debugger bus
//	                        (Peek / Poke)
//	                             |
//	                             |
//	                             \/
//
//	    CPU ---- cpu bus ---- MEMORY ---- I/O ---- VIC (stub)
//	                                         \
//	                             |            \---- SID (logged)
//	                             |             \
//	                                            \---- CIA1 / CIA2
//	                 RAM / BASIC / KERNAL /
//	               character ROM / cartridge
//
// Which of the ROMs are visible is decided by the processor port at address
// 0x0001 and its data direction register at address 0x0000. The memorymap
// package decides which area answers an address.
//
// The I/O area is always visible unless the hardware.memory.bankedIO
// preference is set. Writes to an address answered by a ROM are written to the
// RAM underneath.
//
// Accesses that cannot be satisfied, for example a read beyond the end of a ROM
// image that is smaller than the area it is mapped into, return an error that
// matches the cpubus.AddressError pattern. The error is not fatal and the value
// read is zero. Accesses to unemulated parts of the I/O area are logged.
//
// The Memory type also provides access to the keyboard buffer and to the
// screen, for the benefit of a front-end.
package memory
