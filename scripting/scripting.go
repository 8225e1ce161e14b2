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

package scripting

import (
	"context"
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/logger"
)

// ScriptError is the curated error pattern for errors raised by a script.
const ScriptError = "scripting: %v"

// Script is a Lua environment connected to a C64 emulation.
type Script struct {
	L      *lua.LState
	c64    *hardware.C64
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the script is no longer needed.
func NewScript(c64 *hardware.C64, output io.Writer) *Script {
	scr := &Script{
		L:      lua.NewState(),
		c64:    c64,
		output: output,
	}

	funcs := map[string]lua.LGFunction{
		"print":  scr.print,
		"peek":   scr.peek,
		"poke":   scr.poke,
		"step":   scr.step,
		"run":    scr.run,
		"reg":    scr.reg,
		"setreg": scr.setreg,
		"irq":    scr.irq,
		"nmi":    scr.nmi,
		"tick":   scr.tick,
		"type":   scr.typeString,
		"screen": scr.screen,
	}
	for name, f := range funcs {
		scr.L.SetGlobal(name, scr.L.NewFunction(f))
	}

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the named file. The context can be used to
// stop a long running script.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()

	logger.Logf(logger.Allow, "scripting", "running %s", filename)

	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source.
func (scr *Script) RunString(ctx context.Context, source string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()

	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// checkAddress returns the address argument at position n
func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%#x)", v))
	}
	return uint16(v)
}

// checkByte returns the 8bit argument at position n
func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range (%#x)", v))
	}
	return uint8(v)
}

// result pushes true for a nil error. otherwise pushes false and the error
// message. returns the number of values pushed
func result(L *lua.LState, err error) int {
	if err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (scr *Script) print(L *lua.LState) int {
	s := strings.Builder{}
	for i := 1; i <= L.GetTop(); i++ {
		if i > 1 {
			s.WriteRune('\t')
		}
		s.WriteString(L.ToStringMeta(L.Get(i)).String())
	}
	s.WriteRune('\n')
	io.WriteString(scr.output, s.String())
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	address := checkAddress(L, 1)
	v, err := scr.c64.Mem.Peek(address)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := checkByte(L, 2)
	if err := scr.c64.Mem.Poke(address, v); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	return result(L, scr.c64.Step())
}

func (scr *Script) run(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 1 {
		L.ArgError(1, "instruction count must be positive")
	}

	ctx := L.Context()

	return result(L, scr.c64.RunForInstructionCount(n, func() (bool, error) {
		if ctx == nil {
			return true, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
		return true, nil
	}))
}

func (scr *Script) reg(L *lua.LState) int {
	mc := scr.c64.CPU
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		L.Push(lua.LNumber(mc.A.Value()))
	case "X":
		L.Push(lua.LNumber(mc.X.Value()))
	case "Y":
		L.Push(lua.LNumber(mc.Y.Value()))
	case "SP":
		L.Push(lua.LNumber(mc.SP.Value()))
	case "PC":
		L.Push(lua.LNumber(mc.PC.Address()))
	case "P", "SR":
		L.Push(lua.LNumber(mc.Status.Value()))
	default:
		L.ArgError(1, "unknown register")
	}
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	mc := scr.c64.CPU
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		mc.A.Load(checkByte(L, 2))
	case "X":
		mc.X.Load(checkByte(L, 2))
	case "Y":
		mc.Y.Load(checkByte(L, 2))
	case "SP":
		mc.SP.Load(checkByte(L, 2))
	case "PC":
		mc.SetPC(checkAddress(L, 2))
	case "P", "SR":
		mc.Status.Load(checkByte(L, 2))
	default:
		L.ArgError(1, "unknown register")
	}
	return 0
}

func (scr *Script) irq(L *lua.LState) int {
	if err := scr.c64.Interrupt(cpu.IRQ); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) nmi(L *lua.LState) int {
	if err := scr.c64.Interrupt(cpu.NMI); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) tick(L *lua.LState) int {
	if err := scr.c64.Tick(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) typeString(L *lua.LState) int {
	return result(L, scr.c64.Mem.TypeString(L.CheckString(1)))
}

func (scr *Script) screen(L *lua.LState) int {
	L.Push(lua.LString(scr.c64.Mem.ScreenText()))
	return 1
}
