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

package memory

import (
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

func (mem *Memory) readIO(address uint16, peek bool) uint8 {
	reg, dev := memorymap.MapIO(address)

	switch dev {
	case memorymap.VIC:
		if peek {
			return mem.VIC.Peek(uint8(reg))
		}
		return mem.VIC.Read(uint8(reg))
	case memorymap.ColorRAM:
		return mem.ColorRAM[reg]
	case memorymap.CIA1:
		if peek {
			return mem.CIA1.Peek(uint8(reg))
		}
		return mem.CIA1.Read(uint8(reg))
	case memorymap.CIA2:
		if peek {
			return mem.CIA2.Peek(uint8(reg))
		}
		return mem.CIA2.Read(uint8(reg))
	}

	if !peek {
		mem.log.Logf(mem, "memory", "%s: read from unemulated address (%#04x)", dev, address)
	}

	return 0
}

func (mem *Memory) writeIO(address uint16, data uint8, poke bool) {
	reg, dev := memorymap.MapIO(address)

	switch dev {
	case memorymap.VIC:
		mem.VIC.Write(uint8(reg), data)
		return
	case memorymap.ColorRAM:
		mem.ColorRAM[reg] = data
		return
	case memorymap.CIA1:
		mem.CIA1.Write(uint8(reg), data)
		return
	case memorymap.CIA2:
		mem.CIA2.Write(uint8(reg), data)
		return
	}

	if !poke {
		mem.log.Logf(mem, "memory", "%s: write to unemulated address (%#04x <- %#02x)", dev, address, data)
	}
}
