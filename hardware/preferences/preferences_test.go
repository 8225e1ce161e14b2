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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectEquality(t, p.BankedIO.Get().(bool), false)
	test.ExpectEquality(t, p.LogIO.Get().(bool), true)
	test.ExpectEquality(t, p.TraceSize.Get().(int), 0)
	test.ExpectEquality(t, p.StandardVectors.Get().(bool), false)
	test.ExpectEquality(t, p.ClockSpec.String(), "PAL")
}

func TestValidation(t *testing.T) {
	p := preferences.NewDefaultPreferences()

	test.ExpectSuccess(t, p.ClockSpec.Set("NTSC"))
	test.ExpectEquality(t, p.ClockSpec.String(), "NTSC")

	test.ExpectFailure(t, p.ClockSpec.Set("SECAM"))
	test.ExpectEquality(t, p.ClockSpec.String(), "NTSC")

	test.ExpectFailure(t, p.TraceSize.Set(-1))
	test.ExpectSuccess(t, p.TraceSize.Set("64"))
	test.ExpectEquality(t, p.TraceSize.Get().(int), 64)

	p.SetDefaults()
	test.ExpectEquality(t, p.ClockSpec.String(), "PAL")
	test.ExpectEquality(t, p.TraceSize.Get().(int), 0)
}

func TestSet(t *testing.T) {
	p := preferences.NewDefaultPreferences()

	test.ExpectSuccess(t, p.Set("hardware.memory.bankedIO", "true"))
	test.ExpectEquality(t, p.BankedIO.Get().(bool), true)

	test.ExpectSuccess(t, p.Set("hardware.clock.spec", "NTSC"))
	test.ExpectEquality(t, p.ClockSpec.String(), "NTSC")

	test.ExpectFailure(t, p.Set("hardware.cpu.unknown", "1"))
	test.ExpectFailure(t, p.Set("hardware.cpu.traceSize", "many"))
}
