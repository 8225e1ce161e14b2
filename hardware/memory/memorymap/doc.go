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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents. It also describes the areas of the C64 address space
// and which area answers a given address for a given bank configuration.
//
// The C64 address space is 64KB of RAM with ROM and I/O overlaid on top of it.
// Which overlays are visible is controlled by the processor port at address
// 0x0001 (see the Config type). MapAddress() returns the area that will
// answer an access to an address. MapIO() further subdivides the I/O area.
package memorymap
