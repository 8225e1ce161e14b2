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

// Package clocks defines the constant values that define the speed of the main
// clock in the C64.
//
// The phi2 clock is the clock that drives the CPU and the CIA timers. It is
// derived from the master crystal of the machine and so differs between PAL
// and NTSC machines.
//
// Values taken from:
// https://www.c64-wiki.com/wiki/System_clock
package clocks

import (
	"fmt"
	"strings"
)

// Phi2 clock speed in MHz.
const (
	PAL  = 0.985248
	NTSC = 1.022727
)

// List of valid TV specifications.
var SpecList = []string{"PAL", "NTSC"}

// Phi2 returns the phi2 clock speed in Hz for the named TV specification.
func Phi2(spec string) (float64, error) {
	switch strings.ToUpper(spec) {
	case "PAL":
		return PAL * 1000000, nil
	case "NTSC":
		return NTSC * 1000000, nil
	}
	return 0, fmt.Errorf("clocks: unknown TV specification (%s)", spec)
}
