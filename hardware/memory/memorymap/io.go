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

// IOArea represents the different devices in the I/O area.
type IOArea int

func (a IOArea) String() string {
	switch a {
	case VIC:
		return "VIC"
	case SID:
		return "SID"
	case ColorRAM:
		return "Color RAM"
	case CIA1:
		return "CIA1"
	case CIA2:
		return "CIA2"
	case ExpansionIO:
		return "Expansion"
	}

	return "undefined"
}

// List of I/O areas.
const (
	UndefinedIO IOArea = iota
	VIC
	SID
	ColorRAM
	CIA1
	CIA2
	ExpansionIO
)

// The origin of each device in the I/O area.
const (
	OriginVIC         = uint16(0xd000)
	OriginSID         = uint16(0xd400)
	OriginColorRAM    = uint16(0xd800)
	OriginCIA1        = uint16(0xdc00)
	OriginCIA2        = uint16(0xdd00)
	OriginExpansionIO = uint16(0xde00)
)

// The VIC registers repeat every 64 bytes and the CIA registers repeat every
// 16 bytes. The SID registers repeat every 32 bytes.
const (
	MaskVIC = uint16(0x003f)
	MaskSID = uint16(0x001f)
	MaskCIA = uint16(0x000f)
)

// SizeColorRAM is the number of bytes in color RAM.
const SizeColorRAM = 1024

// MapIO returns the device in the I/O area that answers the address, along
// with the primary register number for that device. For color RAM and the
// expansion area the register is the offset from the origin of the area.
//
// Addresses outside of the I/O area return UndefinedIO.
func MapIO(address uint16) (uint16, IOArea) {
	switch {
	case address < OriginVIC || address > MemtopIO:
		return address, UndefinedIO
	case address < OriginSID:
		return address & MaskVIC, VIC
	case address < OriginColorRAM:
		return address & MaskSID, SID
	case address < OriginCIA1:
		return address - OriginColorRAM, ColorRAM
	case address < OriginCIA2:
		return address & MaskCIA, CIA1
	case address < OriginExpansionIO:
		return address & MaskCIA, CIA2
	}
	return address - OriginExpansionIO, ExpansionIO
}
