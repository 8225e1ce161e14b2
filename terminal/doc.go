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

// Package terminal connects the host terminal to the emulated keyboard. The
// Terminal type is a wrapper for "github.com/pkg/term/termios" and puts the
// terminal into cbreak mode so that key presses are available immediately,
// without waiting for the return key.
//
// Key presses are forwarded to the emulation with the Injector type. The
// Injector is separate from the Terminal so that it can be driven from any
// source of runes.
package terminal
