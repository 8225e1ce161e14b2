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

package terminal

import (
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/memory"
)

// KeyTyper is implemented by anything that can accept PETSCII key presses. The
// memory.Memory type satisfies this interface.
type KeyTyper interface {
	TypeKey(petscii uint8) error
}

// Injector queues key presses and adds them to the emulated keyboard buffer
// as space becomes available.
type Injector struct {
	pending []uint8
}

// Push converts the rune to PETSCII and adds it to the queue. Returns false if
// the rune has no PETSCII equivalent.
func (inj *Injector) Push(r rune) bool {
	p, ok := memory.ASCIIToPETSCII(r)
	if !ok {
		return false
	}
	inj.pending = append(inj.pending, p)
	return true
}

// Pending returns the number of key presses waiting to be injected.
func (inj *Injector) Pending() int {
	return len(inj.pending)
}

// Drain adds as many of the queued key presses as possible to the keyboard
// buffer. Key presses that do not fit remain queued until the next call.
func (inj *Injector) Drain(kt KeyTyper) error {
	for len(inj.pending) > 0 {
		err := kt.TypeKey(inj.pending[0])
		if err != nil {
			if curated.Is(err, memory.KeyboardBufferFull) {
				return nil
			}
			return err
		}
		inj.pending = inj.pending[1:]
	}
	return nil
}
