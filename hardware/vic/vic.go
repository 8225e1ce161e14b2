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

package vic

import (
	"fmt"

	"github.com/jetsetilly/gopher64/logger"
)

// Register offsets of the VIC-II.
const (
	// sprite X and Y positions, two registers per sprite
	M0X = 0x00
	M7Y = 0x0f

	// most significant bits of the sprite X positions
	MSBX = 0x10

	CR1      = 0x11
	Raster   = 0x12
	LPX      = 0x13
	LPY      = 0x14
	MnE      = 0x15
	CR2      = 0x16
	MnYE     = 0x17
	MemPtrs  = 0x18
	IRQ      = 0x19
	IRQMask  = 0x1a
	MnDP     = 0x1b
	MnMC     = 0x1c
	MnXE     = 0x1d
	MnM      = 0x1e
	MnD      = 0x1f
	EC       = 0x20
	B0C      = 0x21
	B1C      = 0x22
	B2C      = 0x23
	B3C      = 0x24
	MM0      = 0x25
	MM1      = 0x26
	M0C      = 0x27
	M7C      = 0x2e
	LastReg  = M7C
	NumRegs  = 0x40
	RegsMask = NumRegs - 1
)

// VIC is the VIC-II register stub.
type VIC struct {
	log  logger.Sink
	perm logger.Permission

	regs [NumRegs]uint8
}

// NewVIC is the preferred method of initialisation for the VIC type.
func NewVIC(log logger.Sink, perm logger.Permission) *VIC {
	vic := &VIC{
		log:  log,
		perm: perm,
	}
	vic.Reset()
	return vic
}

// Reset registers to their power-on values.
func (vic *VIC) Reset() {
	clear(vic.regs[:])
	vic.regs[CR1] = 0x1b
	vic.regs[CR2] = 0xc8
}

func (vic *VIC) String() string {
	return fmt.Sprintf("cr1=%02x cr2=%02x mem=%02x border=%x background=%x",
		vic.regs[CR1], vic.regs[CR2], vic.regs[MemPtrs], vic.Border(), vic.Background())
}

// Border returns the border colour.
func (vic *VIC) Border() uint8 {
	return vic.regs[EC] & 0x0f
}

// Background returns the background colour.
func (vic *VIC) Background() uint8 {
	return vic.regs[B0C] & 0x0f
}

// Read the value of a register. The register is masked to the size of the
// register space.
func (vic *VIC) Read(reg uint8) uint8 {
	reg &= RegsMask

	switch {
	case reg == Raster:
		return 0
	case reg > LastReg:
		vic.log.Logf(vic.perm, "VIC", "read from unused register %#02x", reg)
		return 0xff
	}

	return vic.regs[reg]
}

// Peek returns the value of a register without logging.
func (vic *VIC) Peek(reg uint8) uint8 {
	reg &= RegsMask

	switch {
	case reg == Raster:
		return 0
	case reg > LastReg:
		return 0xff
	}

	return vic.regs[reg]
}

// Write a value to a register. The register is masked to the size of the
// register space.
func (vic *VIC) Write(reg uint8, data uint8) {
	reg &= RegsMask

	switch {
	case reg == MnE:
		if data != 0 {
			vic.log.Logf(vic.perm, "VIC", "sprites are not supported (enable %#02x)", data)
		}
	case reg > LastReg:
		vic.log.Logf(vic.perm, "VIC", "write to unused register %#02x <- %#02x", reg, data)
		return
	}

	vic.regs[reg] = data
}
