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

package cia

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/hardware/cia/tod"
	"github.com/jetsetilly/gopher64/logger"
)

// Register offsets of the CIA.
const (
	PRA = iota
	PRB
	DDRA
	DDRB
	TALO
	TAHI
	TBLO
	TBHI
	TODTenths
	TODSeconds
	TODMinutes
	TODHours
	SDR
	ICR
	CRA
	CRB
)

// NumRegisters is the number of registers in the CIA. Addresses are mirrored
// every NumRegisters bytes.
const NumRegisters = 16

// Bits in the interrupt control register.
const (
	CauseTimerA = 0x01
	CauseTimerB = 0x02
	CauseAlarm  = 0x04
	CauseSerial = 0x08
	CauseFlag   = 0x10

	// reading the ICR sets the IR bit if any cause is enabled in the mask.
	// when writing the bit decides whether mask bits are set or cleared
	ICRSet = 0x80
)

// CIA represents one of the 6526 chips in the C64.
type CIA struct {
	label string
	log   logger.Sink
	perm  logger.Permission

	PortA uint8
	PortB uint8
	DDRA  uint8
	DDRB  uint8

	TimerA *timer.Timer
	TimerB *timer.Timer

	TOD *tod.TOD

	// serial data register. the serial port is not emulated
	SDR uint8

	// the interrupt mask and the latched interrupt causes
	mask  uint8
	cause uint8
}

// NewCIA is the preferred method of initialisation for the CIA type. The rate
// argument is the phi2 clock speed in Hz.
func NewCIA(label string, clk timer.Clock, rate float64, log logger.Sink, perm logger.Permission) *CIA {
	cia := &CIA{
		label:  label,
		log:    log,
		perm:   perm,
		TimerA: timer.NewTimer(fmt.Sprintf("%s TA", label), clk, rate),
		TimerB: timer.NewTimer(fmt.Sprintf("%s TB", label), clk, rate),
		TOD:    tod.NewTOD(clk),
	}
	return cia
}

// Label returns the name of the CIA.
func (cia *CIA) Label() string {
	return cia.label
}

// Reset the CIA to the power-on state.
func (cia *CIA) Reset() {
	cia.PortA = 0
	cia.PortB = 0
	cia.DDRA = 0
	cia.DDRB = 0
	cia.SDR = 0
	cia.mask = 0
	cia.cause = 0
	cia.TimerA.Reset()
	cia.TimerB.Reset()
	cia.TOD.Reset()
}

// SetRate changes the count rate of both timers.
func (cia *CIA) SetRate(rate float64) {
	cia.TimerA.SetRate(rate)
	cia.TimerB.SetRate(rate)
}

func (cia *CIA) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: mask=%02x cause=%02x tod=%s\n", cia.label, cia.mask, cia.cause, cia.TOD))
	s.WriteString(cia.TimerA.String())
	s.WriteString("\n")
	s.WriteString(cia.TimerB.String())
	return s.String()
}

// Mask returns the interrupt mask.
func (cia *CIA) Mask() uint8 {
	return cia.mask
}

// Cause returns the latched interrupt causes without clearing them.
func (cia *CIA) Cause() uint8 {
	return cia.cause
}

// Tick checks the timers for underflow. Returns true if a timer has underflowed
// and the interrupt for that timer is enabled.
func (cia *CIA) Tick() bool {
	var fired uint8

	if cia.TimerA.Step() {
		fired |= CauseTimerA
	}
	if cia.TimerB.Step() {
		fired |= CauseTimerB
	}

	cia.cause |= fired

	return fired&cia.mask != 0
}

// the value of the ICR as seen by the CPU
func (cia *CIA) icr() uint8 {
	v := cia.cause
	if cia.cause&cia.mask != 0 {
		v |= ICRSet
	}
	return v
}

// Read the value of a register, with any side effects that the read causes.
// The register value is masked to the size of the register space.
func (cia *CIA) Read(reg uint8) uint8 {
	reg &= NumRegisters - 1

	switch reg {
	case ICR:
		v := cia.icr()
		cia.cause = 0
		return v
	case TODTenths, TODSeconds, TODMinutes, TODHours:
		return cia.TOD.Read(int(reg - TODTenths))
	}

	return cia.Peek(reg)
}

// Peek returns the value of a register without side effects.
func (cia *CIA) Peek(reg uint8) uint8 {
	reg &= NumRegisters - 1

	switch reg {
	case PRA:
		return cia.PortA | ^cia.DDRA
	case PRB:
		return cia.PortB | ^cia.DDRB
	case DDRA:
		return cia.DDRA
	case DDRB:
		return cia.DDRB
	case TALO:
		return uint8(cia.TimerA.Counter())
	case TAHI:
		return uint8(cia.TimerA.Counter() >> 8)
	case TBLO:
		return uint8(cia.TimerB.Counter())
	case TBHI:
		return uint8(cia.TimerB.Counter() >> 8)
	case TODTenths, TODSeconds, TODMinutes, TODHours:
		return cia.TOD.Peek(int(reg - TODTenths))
	case SDR:
		return cia.SDR
	case ICR:
		return cia.icr()
	case CRA:
		return cia.TimerA.Control()
	case CRB:
		return cia.TimerB.Control()
	}

	return 0
}

// Write a value to a register.
func (cia *CIA) Write(reg uint8, data uint8) {
	reg &= NumRegisters - 1

	switch reg {
	case PRA:
		cia.PortA = data
	case PRB:
		cia.PortB = data
	case DDRA:
		cia.DDRA = data
	case DDRB:
		cia.DDRB = data
	case TALO:
		cia.TimerA.SetLatchLo(data)
	case TAHI:
		cia.TimerA.SetLatchHi(data)
	case TBLO:
		cia.TimerB.SetLatchLo(data)
	case TBHI:
		cia.TimerB.SetLatchHi(data)
	case TODTenths, TODSeconds, TODMinutes, TODHours:
		cia.log.Logf(cia.perm, cia.label, "setting TOD/alarm is not supported (register %#02x <- %#02x)", reg, data)
	case SDR:
		cia.SDR = data
	case ICR:
		if data&ICRSet == ICRSet {
			cia.mask |= data &^ ICRSet
		} else {
			cia.mask &^= data
		}
	case CRA:
		cia.TimerA.SetControl(data)
	case CRB:
		cia.TimerB.SetControl(data)
	}
}
