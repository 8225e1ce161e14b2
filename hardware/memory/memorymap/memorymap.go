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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Processor:
		return "Processor Port"
	case RAM:
		return "RAM"
	case ExternalROM:
		return "External ROM"
	case BASIC:
		return "BASIC"
	case IO:
		return "I/O"
	case CharacterROM:
		return "Character ROM"
	case KERNAL:
		return "KERNAL"
	}

	return "undefined"
}

// The different memory areas in the C64.
const (
	Undefined Area = iota
	Processor
	RAM
	ExternalROM
	BASIC
	IO
	CharacterROM
	KERNAL
)

// Addresses of the processor port registers.
const (
	AddressDDR  = uint16(0x0000)
	AddressPort = uint16(0x0001)
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within is handled by the MapAddress() function.
const (
	OriginExternalROM  = uint16(0x8000)
	MemtopExternalROM  = uint16(0x9fff)
	OriginBASIC        = uint16(0xa000)
	MemtopBASIC        = uint16(0xbfff)
	OriginIO           = uint16(0xd000)
	MemtopIO           = uint16(0xdfff)
	OriginCharacterROM = OriginIO
	MemtopCharacterROM = MemtopIO
	OriginKERNAL       = uint16(0xe000)
	MemtopKERNAL       = uint16(0xffff)
)

// Sizes of the overlay windows.
const (
	SizeExternalROM  = int(MemtopExternalROM-OriginExternalROM) + 1
	SizeBASIC        = int(MemtopBASIC-OriginBASIC) + 1
	SizeCharacterROM = int(MemtopCharacterROM-OriginCharacterROM) + 1
	SizeKERNAL       = int(MemtopKERNAL-OriginKERNAL) + 1
)

// Bits of the processor port that control the visibility of the overlays.
const (
	LORAM  = uint8(0x01)
	HIRAM  = uint8(0x02)
	CHAREN = uint8(0x04)
)

// Config is the information required to decide which area answers an address.
type Config struct {
	// the effective value of the processor port (the port value masked by the
	// data direction register)
	Port uint8

	// an external ROM has been attached
	ExternalROM bool

	// if BankedIO is false then the I/O area is always visible. if it is true
	// then the I/O area is visible only when the CHAREN bit and one of the
	// LORAM or HIRAM bits is set. if neither LORAM nor HIRAM are set then the
	// area is RAM. if CHAREN is not set then the character ROM is visible
	BankedIO bool
}

// BASICVisible returns true if the BASIC ROM is visible in the configuration.
func (c Config) BASICVisible() bool {
	return c.Port&(LORAM|HIRAM) == LORAM|HIRAM
}

// KERNALVisible returns true if the KERNAL ROM is visible in the configuration.
func (c Config) KERNALVisible() bool {
	return c.Port&HIRAM == HIRAM
}

// ioArea returns the area that answers addresses in the I/O window
func (c Config) ioArea() Area {
	if !c.BankedIO {
		return IO
	}
	if c.Port&(LORAM|HIRAM) == 0 {
		return RAM
	}
	if c.Port&CHAREN == CHAREN {
		return IO
	}
	return CharacterROM
}

// MapAddress returns the area of memory that answers the address in the
// specified configuration. The address is also returned as an offset into the
// area. For the RAM, Processor and IO areas the address is returned unchanged.
//
// Note that the returned area is the area that answers a read. Writes to
// addresses that are answered by one of the ROM areas will be written to the
// RAM underneath.
func MapAddress(address uint16, config Config) (uint16, Area) {
	// note that the order of these filters is important

	if address == AddressDDR || address == AddressPort {
		return address, Processor
	}

	if address >= OriginIO && address <= MemtopIO {
		switch a := config.ioArea(); a {
		case CharacterROM:
			return address - OriginCharacterROM, a
		default:
			return address, a
		}
	}

	if config.ExternalROM && address >= OriginExternalROM && address <= MemtopExternalROM {
		return address - OriginExternalROM, ExternalROM
	}

	if address >= OriginBASIC && address <= MemtopBASIC && config.BASICVisible() {
		return address - OriginBASIC, BASIC
	}

	if address >= OriginKERNAL && config.KERNALVisible() {
		return address - OriginKERNAL, KERNAL
	}

	return address, RAM
}
