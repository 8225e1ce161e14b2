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

package scripting_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/cia/timer"
	"github.com/jetsetilly/gopher64/scripting"
)

func newScript(t *testing.T) (*scripting.Script, *hardware.C64, *strings.Builder) {
	t.Helper()
	is := is.New(t)

	c64, err := hardware.NewC64(nil, nil, timer.NewManualClock())
	is.NoErr(err)

	// LDX #$00; INX; JMP $0802
	is.NoErr(c64.LoadProgram(0x0800, []uint8{0xa2, 0x00, 0xe8, 0x4c, 0x02, 0x08}, 0x0800))

	out := &strings.Builder{}
	scr := scripting.NewScript(c64, out)
	t.Cleanup(scr.Close)

	return scr, c64, out
}

func TestPeekPoke(t *testing.T) {
	is := is.New(t)
	scr, c64, out := newScript(t)

	is.NoErr(scr.RunString(context.Background(), `
		poke(0x1000, 0x42)
		print(peek(0x1000))
	`))
	is.Equal(c64.Mem.RAM[0x1000], uint8(0x42))
	is.Equal(out.String(), "66\n")

	err := scr.RunString(context.Background(), `poke(0x1000, 0x100)`)
	is.True(curated.Is(err, scripting.ScriptError))

	err = scr.RunString(context.Background(), `peek(-1)`)
	is.True(curated.Is(err, scripting.ScriptError))
}

func TestStepAndRegisters(t *testing.T) {
	is := is.New(t)
	scr, c64, out := newScript(t)

	is.NoErr(scr.RunString(context.Background(), `
		assert(step())
		assert(step())
		print(reg("x"), reg("PC"))
		setreg("A", 0x80)
		setreg("pc", 0x0802)
	`))
	is.Equal(out.String(), "1\t2051\n")
	is.Equal(c64.CPU.A.Value(), uint8(0x80))
	is.Equal(c64.CPU.PC.Address(), uint16(0x0802))

	err := scr.RunString(context.Background(), `reg("Q")`)
	is.True(curated.Is(err, scripting.ScriptError))
}

func TestRun(t *testing.T) {
	is := is.New(t)
	scr, c64, out := newScript(t)

	is.NoErr(scr.RunString(context.Background(), `
		local ok, err = run(21)
		print(ok, err, reg("X"))
	`))
	is.Equal(out.String(), "true\tnil\t10\n")
	is.Equal(c64.CPU.X.Value(), uint8(10))

	// a fault is returned to the script
	c64.Mem.RAM[0x0802] = 0x02
	out.Reset()
	is.NoErr(scr.RunString(context.Background(), `
		local ok, err = step()
		print(ok, err)
	`))
	is.True(strings.HasPrefix(out.String(), "false\tc64: cpu: unknown opcode"))
}

func TestInterrupts(t *testing.T) {
	is := is.New(t)
	scr, c64, _ := newScript(t)

	c64.Mem.RAM[0xfffa] = 0x00
	c64.Mem.RAM[0xfffb] = 0x20
	c64.Mem.RAM[0xfffe] = 0x00
	c64.Mem.RAM[0xffff] = 0x30

	is.NoErr(scr.RunString(context.Background(), `irq()`))
	is.Equal(c64.CPU.PC.Address(), uint16(0x2000))

	// IRQ is masked now
	is.NoErr(scr.RunString(context.Background(), `irq()`))
	is.Equal(c64.CPU.PC.Address(), uint16(0x2000))

	is.NoErr(scr.RunString(context.Background(), `nmi()`))
	is.Equal(c64.CPU.PC.Address(), uint16(0x3000))

	is.NoErr(scr.RunString(context.Background(), `tick()`))
}

func TestTypeAndScreen(t *testing.T) {
	is := is.New(t)
	scr, c64, out := newScript(t)

	is.NoErr(scr.RunString(context.Background(), `
		assert(type("run\n"))
		local ok, err = type("0123456789")
		print(ok)
	`))
	is.Equal(out.String(), "false\n")
	is.Equal(c64.Mem.RAM[0x00c6], uint8(10))
	is.Equal(c64.Mem.RAM[0x0277], uint8('R'))

	// screen code 8 is the letter H
	out.Reset()
	is.NoErr(scr.RunString(context.Background(), `
		poke(0x0400, 0x08)
		poke(0x0401, 0x09)
		local s = screen()
		print(string.sub(s, 1, 2))
	`))
	is.Equal(out.String(), "HI\n")
}

func TestRunFile(t *testing.T) {
	is := is.New(t)
	scr, _, out := newScript(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	is.NoErr(os.WriteFile(fn, []byte(`print("hello")`), 0600))
	is.NoErr(scr.RunFile(context.Background(), fn))
	is.Equal(out.String(), "hello\n")

	err := scr.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	is.True(curated.Is(err, scripting.ScriptError))
}

func TestCancel(t *testing.T) {
	is := is.New(t)
	scr, _, _ := newScript(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := scr.RunString(ctx, `while true do end`)
	is.True(err != nil)
}
