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

// Package cia implements the 6526 Complex Interface Adapter. The C64 has two
// of these chips. CIA1 raises IRQ interrupts and CIA2 raises NMI interrupts.
//
// The implementation concentrates on the parts of the chip that drive
// interrupts: the two interval timers (see the timer package) and the
// interrupt control register. The time-of-day clock (see the tod package) can
// be read but not set. The data ports and the serial data register store the
// values written to them but are not connected to anything.
//
// Registers are addressed by their offset from the base of the chip. The
// address decoding is done by the memory package.
package cia
