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

package memory

import (
	"strings"
)

// The screen is 40 columns by 25 rows of screen codes, starting at the default
// screen address.
const (
	ScreenOrigin  = uint16(0x0400)
	ScreenColumns = 40
	ScreenRows    = 25
	ScreenSize    = ScreenColumns * ScreenRows
)

// Screen returns a copy of the screen memory.
func (mem *Memory) Screen() [ScreenSize]uint8 {
	var scr [ScreenSize]uint8
	copy(scr[:], mem.RAM[ScreenOrigin:])
	return scr
}

// CharacterROM returns a copy of the character ROM image. The slice will be
// empty if no character ROM has been loaded.
func (mem *Memory) CharacterROM() []uint8 {
	c := make([]uint8, len(mem.charROM))
	copy(c, mem.charROM)
	return c
}

// ScreenCodeToRune converts a screen code to the nearest printable character.
// The reverse video bit is ignored. Screen codes with no equivalent character
// are converted to a question mark.
func ScreenCodeToRune(code uint8) rune {
	code &= 0x7f

	switch {
	case code == 0x00:
		return '@'
	case code <= 0x1a:
		return rune('A' + code - 1)
	case code == 0x1b:
		return '['
	case code == 0x1c:
		return '£'
	case code == 0x1d:
		return ']'
	case code >= 0x20 && code <= 0x3f:
		return rune(code)
	}

	return '?'
}

// ScreenText returns the contents of the screen as text. Each row of the
// screen is one line of text.
func (mem *Memory) ScreenText() string {
	scr := mem.Screen()

	s := strings.Builder{}
	for y := 0; y < ScreenRows; y++ {
		for x := 0; x < ScreenColumns; x++ {
			s.WriteRune(ScreenCodeToRune(scr[y*ScreenColumns+x]))
		}
		s.WriteRune('\n')
	}

	return s.String()
}
