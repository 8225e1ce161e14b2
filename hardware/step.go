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

package hardware

import (
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/logger"
)

// Step the emulation one CPU instruction. The timers are not serviced. See
// Tick().
//
// CPU faults are returned as curated errors with the MachineFault pattern. The
// *cpu.Fault can be retrieved with errors.As().
func (c64 *C64) Step() error {
	err := c64.CPU.ExecuteInstruction()
	if err != nil {
		if _, ok := err.(*cpu.Fault); ok {
			c64.log.Logf(logger.Allow, "c64", "%v", err)
		}
		return curated.Errorf(MachineFault, err)
	}
	return nil
}
