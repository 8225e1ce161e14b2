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

package execution

import (
	"fmt"
	"io"
)

// Registers is a copy of the CPU registers at a moment in time.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x P=%02x", r.PC, r.A, r.X, r.Y, r.SP, r.Status)
}

// Entry is a single entry in the History.
type Entry struct {
	Result    Result
	Registers Registers
}

func (e Entry) String() string {
	return fmt.Sprintf("%-36s %s", e.Result.String(), e.Registers.String())
}

// History is a fixed capacity ring of the most recent instructions. Once the
// capacity has been reached, new entries replace the oldest entries.
type History struct {
	entries []Entry
	cursor  int
	wrapped bool
}

// NewHistory is the preferred method of initialisation for the History type.
// Returns nil if capacity is less than one.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		return nil
	}
	return &History{
		entries: make([]Entry, capacity),
	}
}

// Capacity returns the maximum number of entries the history can hold.
func (h *History) Capacity() int {
	return len(h.entries)
}

// Len returns the number of entries in the history.
func (h *History) Len() int {
	if h.wrapped {
		return len(h.entries)
	}
	return h.cursor
}

// Clear all entries from the history.
func (h *History) Clear() {
	h.cursor = 0
	h.wrapped = false
}

// Push a new entry onto the history.
func (h *History) Push(e Entry) {
	h.entries[h.cursor] = e
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = 0
		h.wrapped = true
	}
}

// Entries returns a copy of the entries in the history, oldest first.
func (h *History) Entries() []Entry {
	c := make([]Entry, 0, h.Len())
	if h.wrapped {
		c = append(c, h.entries[h.cursor:]...)
	}
	c = append(c, h.entries[:h.cursor]...)
	return c
}

// Write the history to the io.Writer, oldest entry first.
func (h *History) Write(output io.Writer) {
	for _, e := range h.Entries() {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}
