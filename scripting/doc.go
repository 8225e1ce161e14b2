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

// Package scripting allows control of a C64 emulation from a Lua script. The
// Lua implementation is provided by "github.com/yuin/gopher-lua".
//
// The following functions are available to the script, in addition to the
// standard Lua library:
//
//	peek(address)          value at address, without side effects
//	poke(address, value)   write value to address, without side effects
//	step()                 execute one instruction
//	run(n)                 execute n instructions, servicing the timers
//	reg(name)              value of register (A, X, Y, SP, PC or P)
//	setreg(name, value)    change the value of a register
//	irq()                  raise an IRQ
//	nmi()                  raise an NMI
//	tick()                 service the CIA timers
//	type(s)                add the string to the keyboard buffer (replaces
//	                       the standard Lua function of the same name)
//	screen()               the text of the screen
//
// The step() and run() functions return true if no error occurred. Otherwise
// they return false and the error message. The type() function behaves the
// same way.
//
// The print() function writes to the output writer given to NewScript().
//
// A simple script:
//
//	poke(0x0400, 0x08)
//	poke(0x0401, 0x09)
//	print(screen())
package scripting
