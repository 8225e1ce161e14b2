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

import (
	"strings"
)

// bit patterns used when converting status flags to and from a uint8.
const (
	SignBit             = uint8(0x80)
	OverflowBit         = uint8(0x40)
	UnusedBit           = uint8(0x20)
	BreakBit            = uint8(0x10)
	DecimalModeBit      = uint8(0x08)
	InterruptDisableBit = uint8(0x04)
	ZeroBit             = uint8(0x02)
	CarryBit            = uint8(0x01)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the status register's name.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteRune('-')

	if sr.Break {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}
	if sr.DecimalMode {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= SignBit
	}
	if sr.Overflow {
		v |= OverflowBit
	}
	if sr.Break {
		v |= BreakBit
	}
	if sr.DecimalMode {
		v |= DecimalModeBit
	}
	if sr.InterruptDisable {
		v |= InterruptDisableBit
	}
	if sr.Zero {
		v |= ZeroBit
	}
	if sr.Carry {
		v |= CarryBit
	}

	// unused bit in the status register is always 1. this doesn't matter when
	// we're in normal form but it does matter in uint8 context
	v |= UnusedBit

	return v
}

// Load sets the status register flags from an 8 bit integer (which has been
// taken from the stack, for example).
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&SignBit == SignBit
	sr.Overflow = v&OverflowBit == OverflowBit
	sr.Break = v&BreakBit == BreakBit
	sr.DecimalMode = v&DecimalModeBit == DecimalModeBit
	sr.InterruptDisable = v&InterruptDisableBit == InterruptDisableBit
	sr.Zero = v&ZeroBit == ZeroBit
	sr.Carry = v&CarryBit == CarryBit
}
