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

package registers

// AddDecimal adds val to the register treating both values as packed binary
// coded decimal. The register value is replaced by the decimal sum and the
// carry out of the tens digit is returned.
//
// Each nibble is summed and reduced modulo ten, with the units digit carrying
// into the tens digit when its sum exceeds nine. Values that are not valid BCD
// are processed in the same way and produce a digit in the range 0 to 9.
//
// The overflow flag is not affected by this function. The 6502 leaves overflow
// undefined in decimal mode and we treat it as cleared.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool) {
	units := int(r.value&0x0f) + int(val&0x0f)
	if carry {
		units++
	}

	tens := int(r.value>>4) + int(val>>4)
	if units > 9 {
		tens++
	}
	rcarry = tens > 9

	r.value = uint8(tens%10)<<4 | uint8(units%10)

	return rcarry
}

// SubtractDecimal is the decimal mode equivalent of Subtract(). The carry flag
// is the inverse of the borrow in the same way as the binary mode function.
// Returns the new carry state, which is set if there was no borrow out of the
// tens digit.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool) {
	units := int(r.value&0x0f) - int(val&0x0f)
	if !carry {
		units--
	}

	tens := int(r.value>>4) - int(val>>4)
	if units < 0 {
		tens--
	}
	rcarry = tens >= 0

	r.value = uint8(wrapDecimal(tens))<<4 | uint8(wrapDecimal(units))

	return rcarry
}

// digit in the range 0 to 9 for any value. go's modulo operator can return a
// negative value
func wrapDecimal(v int) int {
	v %= 10
	if v < 0 {
		v += 10
	}
	return v
}
