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

package cartridgeloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher64/cartridgeloader"
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/test"
)

type mockTarget struct {
	basic     []uint8
	kernal    []uint8
	character []uint8
	cartridge []uint8
}

func (t *mockTarget) LoadBASIC(data []uint8) error {
	t.basic = data
	return nil
}

func (t *mockTarget) LoadKERNAL(data []uint8) error {
	t.kernal = data
	return nil
}

func (t *mockTarget) LoadCharacterROM(data []uint8) error {
	t.character = data
	return nil
}

func (t *mockTarget) AttachCartridge(data []uint8) error {
	t.cartridge = data
	return nil
}

func writeFile(t *testing.T, dir string, name string, size int) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	data := make([]uint8, size)
	for i := range data {
		data[i] = uint8(i)
	}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))
	return fn
}

func TestNewLoader(t *testing.T) {
	cl, err := cartridgeloader.NewLoader("roms/kernal.bin", " kernal")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cl.Kind, cartridgeloader.KERNAL)
	test.ExpectEquality(t, cl.ShortName(), "kernal")
	test.ExpectEquality(t, cl.HasLoaded(), false)

	_, err = cartridgeloader.NewLoader("roms/kernal.bin", "floppy")
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnknownKind), true)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cl := cartridgeloader.Loader{
		Filename: writeFile(t, dir, "basic.bin", 8192),
		Kind:     cartridgeloader.BASIC,
	}
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 8192)
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectInequality(t, cl.Hash, "")

	// hash is checked when it is set before loading
	hash := cl.Hash
	cl = cartridgeloader.Loader{
		Filename: cl.Filename,
		Kind:     cartridgeloader.BASIC,
		Hash:     hash,
	}
	test.ExpectSuccess(t, cl.Load())

	cl = cartridgeloader.Loader{
		Filename: cl.Filename,
		Kind:     cartridgeloader.BASIC,
		Hash:     "0000",
	}
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.UnexpectedSum), true)
	test.ExpectEquality(t, cl.HasLoaded(), false)
}

func TestWrongSize(t *testing.T) {
	dir := t.TempDir()

	cl := cartridgeloader.Loader{
		Filename: writeFile(t, dir, "kernal.bin", 8191),
		Kind:     cartridgeloader.KERNAL,
	}
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.WrongSize), true)

	cl = cartridgeloader.Loader{
		Filename: writeFile(t, dir, "chars.bin", 8192),
		Kind:     cartridgeloader.Character,
	}
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.WrongSize), true)

	// cartridges can be smaller than the external ROM area
	cl = cartridgeloader.Loader{
		Filename: writeFile(t, dir, "cart.bin", 4096),
		Kind:     cartridgeloader.Cartridge,
	}
	test.ExpectSuccess(t, cl.Load())

	cl = cartridgeloader.Loader{
		Filename: writeFile(t, dir, "empty.bin", 0),
		Kind:     cartridgeloader.Cartridge,
	}
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.WrongSize), true)
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.Loader{
		Filename: filepath.Join(t.TempDir(), "missing.bin"),
		Kind:     cartridgeloader.KERNAL,
	}
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.LoadError), true)
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chars.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	cl := cartridgeloader.Loader{
		Filename: srv.URL + "/chars.bin",
		Kind:     cartridgeloader.Character,
	}
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 4096)

	cl = cartridgeloader.Loader{
		Filename: srv.URL + "/missing.bin",
		Kind:     cartridgeloader.Character,
	}
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.LoadError), true)
}

func TestFirmware(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, cartridgeloader.BASICFilename, 8192)
	writeFile(t, dir, cartridgeloader.KERNALFilename, 8192)
	writeFile(t, dir, cartridgeloader.CharacterFilename, 4096)

	tgt := &mockTarget{}

	fw := cartridgeloader.NewFirmware(dir, "")
	test.ExpectSuccess(t, fw.Attach(tgt))
	test.ExpectEquality(t, len(tgt.basic), 8192)
	test.ExpectEquality(t, len(tgt.kernal), 8192)
	test.ExpectEquality(t, len(tgt.character), 4096)
	test.ExpectEquality(t, tgt.cartridge == nil, true)

	fw = cartridgeloader.NewFirmware(dir, writeFile(t, dir, "cart.bin", 8192))
	test.ExpectSuccess(t, fw.Attach(tgt))
	test.ExpectEquality(t, len(tgt.cartridge), 8192)

	// missing KERNAL
	test.DemandSuccess(t, os.Remove(filepath.Join(dir, cartridgeloader.KERNALFilename)))
	fw = cartridgeloader.NewFirmware(dir, "")
	test.ExpectFailure(t, fw.Attach(tgt))
}
