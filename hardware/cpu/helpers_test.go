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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
)

type mockMem struct {
	internal []uint8

	// reads and writes to this page return an AddressError. ignored if zero
	inaccessible uint16

	// reads and writes to this page return an error that is not an
	// AddressError. ignored if zero
	broken uint16
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putVector(address uint16, vector uint16) {
	mem.internal[address] = uint8(vector)
	mem.internal[address+1] = uint8(vector >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) check(address uint16) error {
	page := address & 0xff00
	if mem.inaccessible != 0 && page == mem.inaccessible {
		return curated.Errorf(cpubus.AddressError, address)
	}
	if mem.broken != 0 && page == mem.broken {
		return errors.New("bus error")
	}
	return nil
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if err := mem.check(address); err != nil {
		return 0, err
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if err := mem.check(address); err != nil {
		return err
	}
	mem.internal[address] = data
	return nil
}

// step executes one instruction and fails the test on error
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(); err != nil {
		t.Fatalf("unexpected error at %04x: %v", mc.LastResult.Address, err)
	}
}

// steps executes n instructions
func steps(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		step(t, mc)
	}
}

// fault executes one instruction and returns the fault. fails the test if the
// instruction does not cause a fault
func fault(t *testing.T, mc *cpu.CPU) *cpu.Fault {
	t.Helper()
	err := mc.ExecuteInstruction()
	var f *cpu.Fault
	if !errors.As(err, &f) {
		t.Fatalf("expected a cpu fault (got %v)", err)
	}
	return f
}

func newCPU(origin uint16) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	mc.SetPC(origin)
	return mc, mem
}
