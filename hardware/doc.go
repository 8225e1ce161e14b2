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

// Package hardware is the base package for the C64 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The C64 type is the root of the emulation and contains external references
// to all the hardware sub-systems. From here, the emulation can either be
// started to run continuously (with optional callback to check for continued
// running); or it can be stepped one instruction at a time.
//
// Timers and interrupts are not serviced by the Step() function. The driver
// calls Tick() on its own cadence and may raise interrupts with Interrupt()
// between instructions. The Run() function does both of these things.
package hardware
