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
	"context"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher64/scripting"
)

type scriptCmd struct {
	File      string `arg:"" type:"existingfile" help:"Lua script"`
	ROMs      string `name:"roms" help:"directory containing the firmware images. the machine is reset when given"`
	Cartridge string `name:"cartridge" type:"existingfile" help:"cartridge image to attach"`
	Prefs     string `name:"prefs" help:"preference overrides (key::value; key::value)"`
}

func (s *scriptCmd) Run(g *globals) error {
	p, err := loadPreferences(s.Prefs)
	if err != nil {
		return err
	}

	c64, err := newMachine(p, s.ROMs, s.Cartridge)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scr := scripting.NewScript(c64, os.Stdout)
	defer scr.Close()

	return scr.RunFile(ctx, s.File)
}
