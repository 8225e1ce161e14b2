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
	"github.com/jetsetilly/gopher64/hardware/cpu/execution"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// State is a copy of the visible state of the C64. It is produced by the
// Snapshot() function and is safe to pass to another goroutine.
type State struct {
	Registers  execution.Registers
	Config     memorymap.Config
	Screen     [memory.ScreenSize]uint8
	Border     uint8
	Background uint8
	ZeroPage   [256]uint8
}

// Snapshot the state of the C64.
func (c64 *C64) Snapshot() *State {
	s := &State{
		Registers:  c64.CPU.Registers(),
		Config:     c64.Mem.Config(),
		Screen:     c64.Mem.Screen(),
		Border:     c64.Mem.VIC.Border(),
		Background: c64.Mem.VIC.Background(),
	}
	copy(s.ZeroPage[:], c64.Mem.RAM[:256])
	return s
}
