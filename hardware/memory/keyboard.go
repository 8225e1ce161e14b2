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
	"github.com/jetsetilly/gopher64/curated"
)

// Addresses used by the KERNAL for the keyboard buffer.
const (
	KeyboardBuffer      = uint16(0x0277)
	KeyboardBufferCount = uint16(0x00c6)
	KeyboardBufferSize  = 10
)

// KeyboardBufferFull is the curated error pattern returned when a key cannot be
// added to the keyboard buffer.
const KeyboardBufferFull = "memory: keyboard buffer full (%#02x)"

// TypeKey adds a PETSCII value to the keyboard buffer, as though the key had
// been pressed. The KERNAL will process the key the next time it reads the
// keyboard buffer.
//
// The key is rejected if the buffer is full.
func (mem *Memory) TypeKey(petscii uint8) error {
	n := mem.RAM[KeyboardBufferCount]
	if n >= KeyboardBufferSize {
		return curated.Errorf(KeyboardBufferFull, petscii)
	}
	mem.RAM[KeyboardBuffer+uint16(n)] = petscii
	mem.RAM[KeyboardBufferCount] = n + 1
	return nil
}

// TypeString adds the characters of the string to the keyboard buffer. The
// characters are converted with ASCIIToPETSCII() and characters that have no
// equivalent are skipped.
//
// Characters are added until the keyboard buffer is full, at which point the
// KeyboardBufferFull error is returned.
func (mem *Memory) TypeString(s string) error {
	for _, r := range s {
		p, ok := ASCIIToPETSCII(r)
		if !ok {
			continue
		}
		if err := mem.TypeKey(p); err != nil {
			return err
		}
	}
	return nil
}

// ASCIIToPETSCII converts an ASCII character to the PETSCII value that would be
// produced by the equivalent key in the unshifted character set. Lower case
// letters are converted to upper case.
func ASCIIToPETSCII(r rune) (uint8, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return uint8(r - 'a' + 'A'), true
	case r >= ' ' && r <= ']':
		return uint8(r), true
	case r == '\n' || r == '\r':
		return 0x0d, true
	case r == 0x7f || r == '\b':
		// DEL
		return 0x14, true
	}
	return 0, false
}
