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
	"strconv"

	"github.com/jetsetilly/gopher64/cartridgeloader"
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/prefs"
)

// error patterns for the command line.
const (
	NoFirmware     = "gopher64: a cartridge requires the firmware images"
	InvalidAddress = "gopher64: invalid address (%s)"
)

// loadPreferences loads the hardware preferences from disk. The overrides
// argument is a prefs string of key::value pairs that take priority over the
// values on disk.
func loadPreferences(overrides string) (*preferences.Preferences, error) {
	if overrides != "" {
		prefs.PushCommandLineStack(overrides)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preference overrides: %s", unused)
			}
		}()
	}
	return preferences.NewPreferences()
}

// newMachine creates a new C64 connected to the central logger and the wall
// clock. If roms is not empty then the firmware is loaded from that directory
// and the machine is reset.
func newMachine(p *preferences.Preferences, roms string, cartridge string) (*hardware.C64, error) {
	c64, err := hardware.NewC64(p, logger.Central(), timer.WallClock{})
	if err != nil {
		return nil, err
	}

	if roms == "" {
		if cartridge != "" {
			return nil, curated.Errorf(NoFirmware)
		}
		return c64, nil
	}

	fw := cartridgeloader.NewFirmware(roms, cartridge)
	err = fw.Attach(c64.Mem)
	if err != nil {
		return nil, err
	}

	err = c64.Reset()
	if err != nil {
		return nil, err
	}

	return c64, nil
}

// parseAddress parses a 16bit address. The address can be in decimal or in
// hex with the 0x prefix.
func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidAddress, s)
	}
	return uint16(v), nil
}
