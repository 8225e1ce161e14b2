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

// Gopher64 is an emulator for the Commodore 64. The emulation is headless and
// is controlled from the command line.
//
// The default command is run, which loads the firmware images from the roms
// directory and runs the emulation until interrupted:
//
//	gopher64 run --roms roms --keyboard
//
// Other commands:
//
//	functest   run a raw 6502 binary until the CPU loops on itself
//	script     run a Lua script against the emulation
//	prefs      list and change the hardware preferences
//	version    print the version
package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/version"
)

// globals are the flags common to all commands
type globals struct {
	Log bool `name:"log" help:"echo log entries to stderr"`
}

type cli struct {
	Log bool `name:"log" help:"echo log entries to stderr"`

	Run      runCmd      `cmd:"" default:"1" help:"run the C64 emulation"`
	Functest functestCmd `cmd:"" help:"run a raw 6502 binary until the CPU loops on itself"`
	Script   scriptCmd   `cmd:"" help:"run a Lua script against the emulation"`
	Prefs    prefsCmd    `cmd:"" help:"list and change the hardware preferences"`
	Version  versionCmd  `cmd:"" help:"print the version"`
}

func main() {
	var c cli

	ctx := kong.Parse(&c,
		kong.Name("gopher64"),
		kong.Description(version.ApplicationName+" is an emulator for the Commodore 64"),
		kong.UsageOnError(),
	)

	if c.Log {
		logger.SetEcho(os.Stderr, false)
	}

	err := ctx.Run(&globals{Log: c.Log})
	ctx.FatalIfErrorf(err)
}
