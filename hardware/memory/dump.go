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
	"bytes"
	"fmt"
	"io"
)

// write a hex dump of the memory. repeated lines are replaced with a single
// asterisk
func dump(w io.Writer, origin uint16, data []uint8) {
	const width = 16

	var prev []uint8
	folded := false

	for i := 0; i < len(data); i += width {
		line := data[i:min(i+width, len(data))]

		if prev != nil && bytes.Equal(line, prev) {
			if !folded {
				fmt.Fprintln(w, "*")
				folded = true
			}
			continue
		}

		folded = false
		prev = line

		fmt.Fprintf(w, "%04x:", int(origin)+i)
		for _, v := range line {
			fmt.Fprintf(w, " %02x", v)
		}
		fmt.Fprintln(w)
	}
}

// DumpZeroPage writes the contents of the zero page to the writer. The
// processor port registers are not included. The RAM underneath them is
// shown instead.
func (mem *Memory) DumpZeroPage(w io.Writer) {
	dump(w, 0x0000, mem.RAM[0x0000:0x0100])
}

// DumpStack writes the contents of the stack page to the writer.
func (mem *Memory) DumpStack(w io.Writer) {
	dump(w, 0x0100, mem.RAM[0x0100:0x0200])
}
