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

package diagnostics

import (
	"errors"
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/cpu/execution"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// Report writes a plain text report of the emulation state to the writer. The
// err argument is the error that caused the report to be written and can be
// nil.
func Report(w io.Writer, c64 *hardware.C64, err error) {
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)

		var f *cpu.Fault
		if errors.As(err, &f) {
			fmt.Fprintf(w, "fault: %s (PC=%04x opcode=%02x)\n", f.Category, f.PC, f.Opcode)
		}
		fmt.Fprintln(w)
	}

	section(w, "cpu")
	fmt.Fprintln(w, c64.CPU.String())
	fmt.Fprintln(w, c64.CPU.LastResult.String())

	section(w, "memory")
	fmt.Fprintln(w, c64.Mem.String())

	section(w, "chips")
	fmt.Fprintln(w, c64.Mem.VIC.String())
	fmt.Fprintln(w, c64.Mem.CIA1.String())
	fmt.Fprintln(w, c64.Mem.CIA2.String())

	section(w, "zero page")
	c64.Mem.DumpZeroPage(w)

	section(w, "stack")
	c64.Mem.DumpStack(w)

	section(w, "trace")
	c64.CPU.DumpTrace(w)
}

func section(w io.Writer, name string) {
	fmt.Fprintf(w, "\n-- %s --\n", name)
}

// cpuState is the structure passed to memviz. the CPU type itself is not used
// because it references the whole of memory
type cpuState struct {
	Registers  execution.Registers
	LastResult execution.Result
	Config     memorymap.Config
	Trace      []execution.Entry
}

// Graph writes a graphviz description of the CPU state to the writer. The
// trace history, if enabled, is included.
func Graph(w io.Writer, c64 *hardware.C64) {
	s := &cpuState{
		Registers:  c64.CPU.Registers(),
		LastResult: c64.CPU.LastResult,
		Config:     c64.Mem.Config(),
		Trace:      c64.CPU.Trace(),
	}
	memviz.Map(w, s)
}
