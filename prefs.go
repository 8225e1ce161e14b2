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

	"github.com/jetsetilly/gopher64/hardware/preferences"
)

type prefsCmd struct {
	List  prefsListCmd  `cmd:"" default:"1" help:"list the current preferences"`
	Set   prefsSetCmd   `cmd:"" help:"change a preference and save"`
	Reset prefsResetCmd `cmd:"" help:"revert the preferences to their default values and save"`
}

type prefsListCmd struct{}

func (l *prefsListCmd) Run(g *globals) error {
	p, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	fmt.Print(p.String())
	return nil
}

type prefsSetCmd struct {
	Key   string `arg:"" help:"preference key"`
	Value string `arg:"" help:"new value"`
}

func (s *prefsSetCmd) Run(g *globals) error {
	p, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	err = p.Set(s.Key, s.Value)
	if err != nil {
		return err
	}
	return p.Save()
}

type prefsResetCmd struct{}

func (r *prefsResetCmd) Run(g *globals) error {
	p, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	p.SetDefaults()
	return p.Save()
}
