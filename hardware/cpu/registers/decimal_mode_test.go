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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/test"
)

func TestDecimalModeCarry(t *testing.T) {
	var rcarry bool

	// initialisation
	r8 := registers.NewRegister(0, "test")

	// addition without carry
	rcarry = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x01)
	test.ExpectFailure(t, rcarry)

	// addition with carry
	rcarry = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x03)
	test.ExpectFailure(t, rcarry)

	// subtraction with carry (subtract value)
	r8.Load(9)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x08)

	// subtraction without carry (subtract value and another 1)
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x06)

	// addition on tens boundary
	r8.Load(9)
	rcarry = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x10)
	test.ExpectFailure(t, rcarry)

	// subtraction on tens boundary
	rcarry = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x09)
	test.ExpectSuccess(t, rcarry)

	// addition on hundreds boundary
	r8.Load(0x99)
	rcarry = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, rcarry)

	// subtraction on hundreds boundary
	rcarry = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, rcarry)
}

func TestDecimalModeSums(t *testing.T) {
	r8 := registers.NewRegister(0, "test")

	// every pair of two digit decimal numbers
	for a := 0; a < 100; a++ {
		for b := 0; b < 100; b++ {
			for _, c := range []bool{false, true} {
				r8.Load(toBCD(a))
				rcarry := r8.AddDecimal(toBCD(b), c)

				sum := a + b
				if c {
					sum++
				}
				test.DemandEquality(t, r8.Value(), toBCD(sum%100), a, b, c)
				test.DemandEquality(t, rcarry, sum > 99, a, b, c)

				r8.Load(toBCD(a))
				rcarry = r8.SubtractDecimal(toBCD(b), c)

				diff := a - b
				if !c {
					diff--
				}
				test.DemandEquality(t, rcarry, diff >= 0, a, b, c)
				if diff < 0 {
					diff += 100
				}
				test.DemandEquality(t, r8.Value(), toBCD(diff), a, b, c)
			}
		}
	}
}

func TestDecimalModeInvalid(t *testing.T) {
	// units digit of 0x0f is not valid BCD but the result is still a valid
	// digit
	r8 := registers.NewRegister(0x0f, "test")
	rcarry := r8.AddDecimal(0x00, false)
	test.ExpectEquality(t, r8.Value(), 0x15)
	test.ExpectFailure(t, rcarry)
}

func toBCD(v int) uint8 {
	return uint8((v/10)<<4 | (v % 10))
}
