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
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher64/diagnostics"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/statsview"
	"github.com/jetsetilly/gopher64/terminal"
)

type runCmd struct {
	ROMs         string `name:"roms" default:"roms" help:"directory containing the firmware images"`
	Cartridge    string `name:"cartridge" type:"existingfile" help:"cartridge image to attach"`
	Prefs        string `name:"prefs" help:"preference overrides (key::value; key::value)"`
	Keyboard     bool   `name:"keyboard" help:"forward key presses to the emulation and show the screen"`
	Statsview    bool   `name:"statsview" help:"launch the runtime statistics server"`
	Memviz       string `name:"memviz" help:"write a graphviz description of the CPU to the file on exit"`
	Instructions int    `name:"instructions" default:"0" help:"stop after this many instructions (zero for no limit)"`
	Screen       bool   `name:"screen" help:"print the screen text on exit"`
}

// how often the screen is redrawn in keyboard mode
const screenRefresh = 100 * time.Millisecond

func (r *runCmd) Run(g *globals) error {
	p, err := loadPreferences(r.Prefs)
	if err != nil {
		return err
	}

	c64, err := newMachine(p, r.ROMs, r.Cartridge)
	if err != nil {
		return err
	}

	if r.Statsview {
		srv := statsview.Launch(os.Stdout, "")
		defer srv.Stop()
	}

	// interrupt signal ends the emulation
	var quit atomic.Bool
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		<-intChan
		quit.Store(true)
	}()

	var keyboard *keyboardMode
	if r.Keyboard {
		keyboard, err = newKeyboardMode(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer keyboard.cleanUp()
	}

	var brake int
	continueCheck := func() (bool, error) {
		brake++
		if brake < hardware.PerformanceBrake {
			return true, nil
		}
		brake = 0

		if keyboard != nil {
			if err := keyboard.service(c64); err != nil {
				return false, err
			}
		}

		return !quit.Load(), nil
	}

	if r.Instructions > 0 {
		err = c64.RunForInstructionCount(r.Instructions, continueCheck)
	} else {
		err = c64.Run(continueCheck)
	}

	if keyboard != nil {
		keyboard.cleanUp()
	}

	if err != nil {
		diagnostics.Report(os.Stderr, c64, err)
	}

	if r.Memviz != "" {
		if err := writeGraph(r.Memviz, c64); err != nil {
			return err
		}
	}

	if r.Screen {
		fmt.Print(c64.Mem.ScreenText())
	}

	return err
}

func writeGraph(filename string, c64 *hardware.C64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	diagnostics.Graph(f, c64)
	return nil
}

// keyboardMode forwards key presses from the terminal to the emulation and
// redraws the screen text when it changes
type keyboardMode struct {
	term   *terminal.Terminal
	inj    terminal.Injector
	output io.Writer

	lastDraw time.Time
	screen   string
}

func newKeyboardMode(input *os.File, output io.Writer) (*keyboardMode, error) {
	term, err := terminal.NewTerminal(input)
	if err != nil {
		return nil, err
	}
	err = term.CBreakMode()
	if err != nil {
		return nil, err
	}
	return &keyboardMode{
		term:   term,
		output: output,
	}, nil
}

func (kb *keyboardMode) service(c64 *hardware.C64) error {
	for done := false; !done; {
		select {
		case k, ok := <-kb.term.Keys():
			if !ok {
				done = true
				break
			}
			kb.inj.Push(k)
		default:
			done = true
		}
	}

	err := kb.inj.Drain(c64.Mem)
	if err != nil {
		return err
	}

	if time.Since(kb.lastDraw) < screenRefresh {
		return nil
	}
	kb.lastDraw = time.Now()

	screen := c64.Mem.ScreenText()
	if screen != kb.screen {
		kb.screen = screen
		fmt.Fprint(kb.output, terminal.ClearScreen)
		fmt.Fprint(kb.output, screen)
	}

	return nil
}

func (kb *keyboardMode) cleanUp() {
	_ = kb.term.CleanUp()
}
