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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jetsetilly/gopher64/diagnostics"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/logger"
)

type functestCmd struct {
	File    string `arg:"" type:"existingfile" help:"raw 6502 binary"`
	Origin  string `name:"origin" default:"0x0000" help:"load address of the binary"`
	Entry   string `name:"entry" default:"0x0400" help:"address of the first instruction"`
	Success string `name:"success" default:"0x3469" help:"address of the loop that indicates success"`
	Trace   int    `name:"trace" default:"20" help:"number of instructions to show on failure"`
}

func (f *functestCmd) Run(g *globals) error {
	origin, err := parseAddress(f.Origin)
	if err != nil {
		return err
	}
	entry, err := parseAddress(f.Entry)
	if err != nil {
		return err
	}
	success, err := parseAddress(f.Success)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(f.File)
	if err != nil {
		return err
	}

	c64, err := functest(data, origin, entry, success, f.Trace)
	if err != nil {
		if c64 != nil {
			diagnostics.Report(os.Stderr, c64, err)
		}
		return err
	}

	fmt.Printf("success: loop at %#04x\n", success)

	return nil
}

// functest runs the binary until the CPU faults. a self-loop at the success
// address is not an error
func functest(data []uint8, origin uint16, entry uint16, success uint16, trace int) (*hardware.C64, error) {
	// all of the address space is RAM
	p := preferences.NewDefaultPreferences()
	if err := p.BankedIO.Set(true); err != nil {
		return nil, err
	}
	if err := p.TraceSize.Set(trace); err != nil {
		return nil, err
	}

	c64, err := hardware.NewC64(p, logger.Central(), timer.WallClock{})
	if err != nil {
		return nil, err
	}

	err = c64.LoadProgram(origin, data, entry)
	if err != nil {
		return nil, err
	}

	for {
		err = c64.Step()
		if err == nil {
			continue
		}

		var fault *cpu.Fault
		if errors.As(err, &fault) && fault.Category == cpu.SelfLoop && fault.PC == success {
			return c64, nil
		}

		return c64, err
	}
}
