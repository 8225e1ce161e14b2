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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cia"
	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/hardware/vic"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/prefs"
)

// SizeRAM is the number of bytes of general RAM.
const SizeRAM = 0x10000

// Power-on values of the processor port.
const (
	DefaultDDR  = uint8(0x2f)
	DefaultPort = uint8(0x37)
)

// PortPullUps are the processor port bits that read high when the direction
// register sets them as inputs. LORAM, HIRAM and CHAREN have pull-up resistors
// and bit 4 is the cassette switch sense, which is high when no button is
// pressed.
const PortPullUps = uint8(0x17)

// ROMTooLarge is the curated error pattern for ROM images that do not fit in
// the memory area they are mapped into.
const ROMTooLarge = "memory: %s image too large (%d bytes, maximum %d)"

// Memory is the address space of the C64.
type Memory struct {
	prefs *preferences.Preferences
	log   logger.Sink

	RAM      [SizeRAM]uint8
	ColorRAM [memorymap.SizeColorRAM]uint8

	// ROM images. these are never written to once loaded
	basic     []uint8
	kernal    []uint8
	charROM   []uint8
	cartridge []uint8

	// the processor port and its data direction register
	ddr  uint8
	port uint8

	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// clock is the source of time for the CIA timers.
func NewMemory(prefs *preferences.Preferences, log logger.Sink, clk timer.Clock) (*Memory, error) {
	rate, err := clocks.Phi2(prefs.ClockSpec.String())
	if err != nil {
		return nil, curated.Errorf("memory: %v", err)
	}

	mem := &Memory{
		prefs: prefs,
		log:   log,
		ddr:   DefaultDDR,
		port:  DefaultPort,
	}

	mem.VIC = vic.NewVIC(log, mem)
	mem.CIA1 = cia.NewCIA("CIA1", clk, rate, log, mem)
	mem.CIA2 = cia.NewCIA("CIA2", clk, rate, log, mem)

	// the timers follow changes to the TV specification
	prefs.ClockSpec.SetHookPost(mem.setClockSpec)

	return mem, nil
}

func (mem *Memory) setClockSpec(v prefs.Value) error {
	rate, err := clocks.Phi2(fmt.Sprintf("%v", v))
	if err != nil {
		return curated.Errorf("memory: %v", err)
	}
	mem.CIA1.SetRate(rate)
	mem.CIA2.SetRate(rate)
	return nil
}

func (mem *Memory) String() string {
	return memorymap.Summary(mem.Config())
}

// AllowLogging implements the logger.Permission interface.
func (mem *Memory) AllowLogging() bool {
	return mem.prefs.LogIO.Get().(bool)
}

// Reset the processor port and the I/O chips to their power-on state. The
// contents of RAM are not changed.
func (mem *Memory) Reset() {
	mem.ddr = DefaultDDR
	mem.port = DefaultPort
	mem.VIC.Reset()
	mem.CIA1.Reset()
	mem.CIA2.Reset()
}

// Config returns the current bank configuration.
func (mem *Memory) Config() memorymap.Config {
	return memorymap.Config{
		Port:        mem.portValue(),
		ExternalROM: mem.cartridge != nil,
		BankedIO:    mem.prefs.BankedIO.Get().(bool),
	}
}

// the value of the processor port as seen by the CPU and the banking logic.
// output bits come from the latch and input bits from the pull-ups
func (mem *Memory) portValue() uint8 {
	return (mem.port & mem.ddr) | (PortPullUps &^ mem.ddr)
}

func (mem *Memory) loadROM(label string, data []uint8, size int) ([]uint8, error) {
	if len(data) > size {
		return nil, curated.Errorf(ROMTooLarge, label, len(data), size)
	}
	rom := make([]uint8, len(data))
	copy(rom, data)
	return rom, nil
}

// LoadBASIC loads the BASIC ROM image. The image may be smaller than the BASIC
// area.
func (mem *Memory) LoadBASIC(data []uint8) error {
	rom, err := mem.loadROM("BASIC", data, memorymap.SizeBASIC)
	if err != nil {
		return err
	}
	mem.basic = rom
	return nil
}

// LoadKERNAL loads the KERNAL ROM image. The image may be smaller than the
// KERNAL area.
func (mem *Memory) LoadKERNAL(data []uint8) error {
	rom, err := mem.loadROM("KERNAL", data, memorymap.SizeKERNAL)
	if err != nil {
		return err
	}
	mem.kernal = rom
	return nil
}

// LoadCharacterROM loads the character ROM image.
func (mem *Memory) LoadCharacterROM(data []uint8) error {
	rom, err := mem.loadROM("character ROM", data, memorymap.SizeCharacterROM)
	if err != nil {
		return err
	}
	mem.charROM = rom
	return nil
}

// AttachCartridge loads an external ROM image into the external ROM area.
// Attaching an empty image removes the cartridge.
func (mem *Memory) AttachCartridge(data []uint8) error {
	if len(data) == 0 {
		mem.cartridge = nil
		return nil
	}
	rom, err := mem.loadROM("cartridge", data, memorymap.SizeExternalROM)
	if err != nil {
		return err
	}
	mem.cartridge = rom
	return nil
}

// LoadRAM copies data directly into RAM starting at the origin address. The
// bank configuration is ignored. Data that would extend beyond the end of the
// address space is not copied.
func (mem *Memory) LoadRAM(origin uint16, data []uint8) {
	copy(mem.RAM[origin:], data)
}

// readROM returns the value at the offset of the ROM image. An offset beyond
// the end of the image is logged and answered with zero
func (mem *Memory) readROM(label string, rom []uint8, offset uint16, address uint16) (uint8, error) {
	if int(offset) >= len(rom) {
		mem.log.Logf(mem, "memory", "%s: read beyond end of image (%#04x)", label, address)
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return rom[offset], nil
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	return mem.read(address, false)
}

// Peek implements the cpubus.DebugBus interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.read(address, true)
}

func (mem *Memory) read(address uint16, peek bool) (uint8, error) {
	ma, area := memorymap.MapAddress(address, mem.Config())

	switch area {
	case memorymap.Processor:
		if ma == memorymap.AddressDDR {
			return mem.ddr, nil
		}
		return mem.portValue(), nil
	case memorymap.IO:
		return mem.readIO(address, peek), nil
	case memorymap.ExternalROM:
		return mem.readROM("cartridge", mem.cartridge, ma, address)
	case memorymap.BASIC:
		return mem.readROM("BASIC", mem.basic, ma, address)
	case memorymap.KERNAL:
		return mem.readROM("KERNAL", mem.kernal, ma, address)
	case memorymap.CharacterROM:
		return mem.readROM("character ROM", mem.charROM, ma, address)
	}

	return mem.RAM[ma], nil
}

// ReadWord reads two consecutive bytes and returns them as a little-endian
// word. The address of the second byte wraps around at the top of memory.
//
// Both bytes are always read. If either read fails the first error is
// returned.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	lo, errLo := mem.Read(address)
	hi, errHi := mem.Read(address + 1)
	if errLo != nil {
		return uint16(hi)<<8 | uint16(lo), errLo
	}
	return uint16(hi)<<8 | uint16(lo), errHi
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	return mem.write(address, data, false)
}

// Poke implements the cpubus.DebugBus interface.
func (mem *Memory) Poke(address uint16, data uint8) error {
	return mem.write(address, data, true)
}

func (mem *Memory) write(address uint16, data uint8, poke bool) error {
	ma, area := memorymap.MapAddress(address, mem.Config())

	switch area {
	case memorymap.Processor:
		if ma == memorymap.AddressDDR {
			mem.ddr = data
		} else {
			mem.port = data & mem.ddr
		}
		return nil
	case memorymap.IO:
		mem.writeIO(address, data, poke)
		return nil
	}

	// all other areas, including the ROM areas, write to RAM
	mem.RAM[address] = data

	return nil
}
