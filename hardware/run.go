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

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// TickCadence is the number of instructions executed by Run() between each
// call to Tick().
const TickCadence = 64

// Run sets the emulation running as quickly as possible. The CIA timers are
// serviced every TickCadence instructions.
//
// Returns when continueCheck returns false or an error, or when the CPU
// faults. A nil continueCheck will run until the CPU faults.
func (c64 *C64) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	var cadence int

	for {
		if err := c64.Step(); err != nil {
			return err
		}

		cadence++
		if cadence >= TickCadence {
			cadence = 0
			if err := c64.Tick(); err != nil {
				return err
			}
		}

		running, err := continueCheck()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// RunForInstructionCount runs the emulation for the specified number of
// instructions. The CIA timers are serviced as in the Run() function. A count
// of zero or less does nothing.
func (c64 *C64) RunForInstructionCount(count int, continueCheck func() (bool, error)) error {
	if count <= 0 {
		return nil
	}

	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	return c64.Run(func() (bool, error) {
		count--
		if count <= 0 {
			return false, nil
		}
		return continueCheck()
	})
}
