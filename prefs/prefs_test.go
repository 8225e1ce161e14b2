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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("string", &s))
	test.ExpectSuccess(t, dsk.Add("int", &i))

	// loading a file that doesn't exist
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, s.Set("NTSC"))
	test.ExpectSuccess(t, i.Set(64))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "int :: 64\nstring :: NTSC\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, i.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "NTSC")
	test.ExpectEquality(t, i.Get().(int), 64)

	// a different disk instance with only one of the keys. saving should not
	// lose the other values
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var j prefs.Int
	test.ExpectSuccess(t, dsk2.Add("int", &j))
	test.ExpectSuccess(t, j.Set("128"))
	test.DemandSuccess(t, dsk2.Save())
	cmpTmpFile(t, fn, "int :: 128\nstring :: NTSC\n")

	test.ExpectFailure(t, dsk.Set("unknown", 1))
	test.ExpectSuccess(t, dsk.Set("int", 10))
	test.ExpectEquality(t, i.Get().(int), 10)
}

func TestHooks(t *testing.T) {
	var s prefs.String
	s.SetHookPre(func(v prefs.Value) error {
		if v.(string) != "PAL" && v.(string) != "NTSC" {
			return errors.New("bad value")
		}
		return nil
	})

	var post string
	s.SetHookPost(func(v prefs.Value) error {
		post = v.(string)
		return nil
	})

	test.ExpectSuccess(t, s.Set("PAL"))
	test.ExpectEquality(t, post, "PAL")
	test.ExpectFailure(t, s.Set("SECAM"))
	test.ExpectEquality(t, s.String(), "PAL")
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	prefs.PushCommandLineStack("hardware.cpu.traceSize::32")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("hardware.cpu.traceSize", &i))
	test.ExpectEquality(t, i.Get().(int), 32)
}
