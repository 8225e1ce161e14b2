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

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfce2)
	test.ExpectEquality(t, pc.Label(), "PC")
	test.ExpectEquality(t, pc.Address(), 0xfce2)
	test.ExpectEquality(t, pc.String(), "fce2")

	// operand fetch
	carry := pc.Add(2)
	test.ExpectFailure(t, carry)
	test.ExpectEquality(t, pc.Address(), 0xfce4)

	// a negative branch offset is added as its two's complement
	pc.Load(0x0810)
	carry = pc.Add(0xfffc)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, pc.Address(), 0x080c)
}

func TestProgramCounterOverflow(t *testing.T) {
	pc := registers.NewProgramCounter(0xffff)
	carry := pc.Add(1)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, pc.Address(), 0x0000)
	test.ExpectEquality(t, pc.String(), "0000")
}
