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

package cpu

import (
	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
)

// InterruptKind identifies the cause of an interrupt.
type InterruptKind int

// List of interrupt kinds.
const (
	IRQ InterruptKind = iota
	NMI
	BRK
)

func (k InterruptKind) String() string {
	switch k {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	case BRK:
		return "BRK"
	}
	return "unknown interrupt"
}

// Vector returns the address of the vector used by the interrupt kind.
//
// By default the BRK instruction and the NMI share the vector at 0xfffe and
// the IRQ uses the vector at 0xfffa. The hardware.cpu.standardVectors
// preference changes this to the documented assignment, with the IRQ and BRK
// sharing 0xfffe and the NMI using 0xfffa.
func (mc *CPU) Vector(kind InterruptKind) uint16 {
	if mc.prefs.StandardVectors.Get().(bool) {
		if kind == NMI {
			return cpubus.NMI
		}
		return cpubus.IRQ
	}

	if kind == IRQ {
		return cpubus.NMI
	}
	return cpubus.IRQ
}

// Interrupt the CPU. An IRQ is ignored if the interrupt disable flag is set.
// Interrupts should only be raised between calls to ExecuteInstruction().
//
// A BRK interrupt raised with this function does not skip the byte following
// the current PC as the BRK instruction does.
func (mc *CPU) Interrupt(kind InterruptKind) error {
	if kind == IRQ && mc.Status.InterruptDisable {
		return nil
	}
	return mc.interrupt(kind)
}

func (mc *CPU) interrupt(kind InterruptKind) error {
	err := mc.pushPC(mc.PC.Address())
	if err != nil {
		return err
	}

	// the break flag is pushed only by the BRK instruction. the interrupt
	// handler uses it to tell the difference between BRK and IRQ
	status := mc.Status.Value() | registers.UnusedBit
	if kind == BRK {
		status |= registers.BreakBit
	} else {
		status &^= registers.BreakBit
	}

	err = mc.push(status)
	if err != nil {
		return err
	}

	mc.Status.InterruptDisable = true

	return mc.LoadPCIndirect(mc.Vector(kind))
}
