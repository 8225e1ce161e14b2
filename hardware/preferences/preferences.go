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

package preferences

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/resources"
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// whether the I/O area is subject to the bank switching bits of the
	// processor port. if false, the I/O area is always visible
	BankedIO prefs.Bool

	// whether accesses to unimplemented or unusual I/O addresses are logged
	LogIO prefs.Bool

	// the number of entries in the CPU trace history. zero disables the trace
	TraceSize prefs.Int

	// the 6502 vectors as documented. by default the BRK instruction and the
	// NMI share the vector at 0xfffe and the IRQ uses the vector at 0xfffa
	StandardVectors prefs.Bool

	// the TV specification of the machine. decides the speed of the phi2
	// clock, which drives the CIA timers
	ClockSpec prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	return newPreferences(pth, true)
}

// NewDefaultPreferences returns a Preferences instance with default values. The
// values are not loaded from disk and cannot be saved.
func NewDefaultPreferences() *Preferences {
	// error is impossible when load is false
	p, _ := newPreferences("", false)
	return p
}

func newPreferences(pth string, load bool) (*Preferences, error) {
	p := &Preferences{}

	p.ClockSpec.SetHookPre(func(v prefs.Value) error {
		if !slices.Contains(clocks.SpecList, strings.ToUpper(fmt.Sprintf("%v", v))) {
			return fmt.Errorf("preferences: unknown TV specification (%s)", v)
		}
		return nil
	})

	p.TraceSize.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("preferences: trace size cannot be negative (%d)", v)
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Add("hardware.memory.bankedIO", &p.BankedIO)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("hardware.memory.logIO", &p.LogIO)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("hardware.cpu.traceSize", &p.TraceSize)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("hardware.cpu.standardVectors", &p.StandardVectors)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("hardware.clock.spec", &p.ClockSpec)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	if load {
		err = p.dsk.Load()
		if err != nil {
			// ignore missing prefs file errors
			if !curated.Is(err, prefs.NoPrefsFile) {
				return nil, fmt.Errorf("preferences: %w", err)
			}
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	// errors are impossible with these values
	_ = p.BankedIO.Set(false)
	_ = p.LogIO.Set(true)
	_ = p.TraceSize.Set(0)
	_ = p.StandardVectors.Set(false)
	_ = p.ClockSpec.Set("PAL")
}

// Set the preference with the key to the value. The value is converted as
// appropriate for the preference type.
func (p *Preferences) Set(key string, value string) error {
	err := p.dsk.Set(key, value)
	if err != nil {
		return fmt.Errorf("preferences: %w", err)
	}
	return nil
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return fmt.Errorf("preferences: no disk")
	}
	return p.dsk.Save()
}
