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
	"bufio"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/gopher64/curated"
)

// NotATerminal is returned by NewTerminal() if the input file does not
// support terminal attributes.
const NotATerminal = "terminal: %v"

// ClearScreen is the ANSI sequence that clears the terminal and moves the
// cursor to the top left.
const ClearScreen = "\033[H\033[2J"

// the number of key presses that can be waiting on the Keys() channel
const keyQueue = 64

// Terminal is the container for a posix terminal.
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	keys chan rune

	crit   sync.Mutex
	cbreak bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is not put into cbreak mode until CBreakMode() is called.
func NewTerminal(input *os.File) (*Terminal, error) {
	pt := &Terminal{
		input: input,
		keys:  make(chan rune, keyQueue),
	}

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	go pt.read()

	return pt, nil
}

// read runes from the input and forward them to the keys channel until the
// input ends. runes are dropped if the channel is full
func (pt *Terminal) read() {
	defer close(pt.keys)

	r := bufio.NewReader(pt.input)
	for {
		k, _, err := r.ReadRune()
		if err != nil {
			return
		}
		select {
		case pt.keys <- k:
		default:
		}
	}
}

// Keys returns the channel on which key presses are sent. The channel is
// closed when the input is closed.
func (pt *Terminal) Keys() <-chan rune {
	return pt.keys
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	if !pt.cbreak {
		return nil
	}
	pt.cbreak = false
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Key presses are available
// without the return key being pressed and signals are still processed.
func (pt *Terminal) CBreakMode() error {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	if pt.cbreak {
		return nil
	}
	pt.cbreak = true
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (pt *Terminal) Flush() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// CleanUp returns the terminal to canonical mode. The goroutine reading the
// input will end when the input is closed.
func (pt *Terminal) CleanUp() error {
	return pt.CanonicalMode()
}
