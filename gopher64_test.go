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

package main

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu"
)

func TestParseAddress(t *testing.T) {
	is := is.New(t)

	a, err := parseAddress("0x0400")
	is.NoErr(err)
	is.Equal(a, uint16(0x0400))

	a, err = parseAddress("1024")
	is.NoErr(err)
	is.Equal(a, uint16(0x0400))

	_, err = parseAddress("0x10000")
	is.True(curated.Is(err, InvalidAddress))

	_, err = parseAddress("zero")
	is.True(curated.Is(err, InvalidAddress))
}

func TestFunctestSuccess(t *testing.T) {
	is := is.New(t)

	// LDA #$01; JMP $0402
	prg := []uint8{0xa9, 0x01, 0x4c, 0x02, 0x04}

	c64, err := functest(prg, 0x0400, 0x0400, 0x0402, 4)
	is.NoErr(err)
	is.Equal(c64.CPU.A.Value(), uint8(0x01))
	is.Equal(c64.CPU.PC.Address(), uint16(0x0402))
}

func TestFunctestFailure(t *testing.T) {
	is := is.New(t)

	// LDA #$01; JMP $0402
	prg := []uint8{0xa9, 0x01, 0x4c, 0x02, 0x04}

	// loop is not at the success address
	c64, err := functest(prg, 0x0400, 0x0400, 0x3469, 4)
	is.True(err != nil)
	is.True(c64 != nil)

	// unknown opcode
	_, err = functest([]uint8{0x02}, 0x0400, 0x0400, 0x3469, 4)
	var f *cpu.Fault
	is.True(errors.As(err, &f))
	is.Equal(f.Category, cpu.UnknownOpcode)
	is.Equal(f.PC, uint16(0x0400))
}

func TestNewMachineWithoutFirmware(t *testing.T) {
	is := is.New(t)

	c64, err := newMachine(nil, "", "")
	is.NoErr(err)
	is.True(c64 != nil)

	_, err = newMachine(nil, "", "cart.bin")
	is.True(curated.Is(err, NoFirmware))
}
