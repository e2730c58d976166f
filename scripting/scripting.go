// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package scripting

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/screenshot"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern for errors returned by Run() and RunFile().
const ScriptError = "scripting: %v"

// the name of the global table containing the emulation functions
const tableName = "nes"

// Script is a Lua interpreter bound to an instance of the emulation.
type Script struct {
	nes    *hardware.NES
	state  *lua.LState
	output io.Writer
	video  *digest.Video
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print function is written to output, which can be nil.
func NewScript(nes *hardware.NES, output io.Writer) *Script {
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		nes:    nes,
		state:  lua.NewState(),
		output: output,
		video:  digest.NewVideo(),
	}

	nes.PPU.AddFrameTrigger(scr.video)

	tbl := scr.state.NewTable()
	scr.state.SetFuncs(tbl, map[string]lua.LGFunction{
		"tick":       scr.tick,
		"step":       scr.step,
		"frame":      scr.frame,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"reg":        scr.reg,
		"press":      scr.press,
		"release":    scr.release,
		"cycles":     scr.cycles,
		"dots":       scr.dots,
		"framenum":   scr.framenum,
		"scanline":   scr.scanline,
		"dot":        scr.dot,
		"reset":      scr.reset,
		"power":      scr.power,
		"digest":     scr.digest,
		"screenshot": scr.screenshot,
	})
	scr.state.SetGlobal(tableName, tbl)
	scr.state.SetGlobal("print", scr.state.NewFunction(scr.print))

	return scr
}

// Close the script and detach it from the emulation. The Script should not
// be used after Close() has been called.
func (scr *Script) Close() {
	scr.nes.PPU.RemoveFrameTrigger(scr.video)
	scr.state.Close()
}

// Run the Lua source. The context can be used to stop a long running script.
func (scr *Script) Run(ctx context.Context, source string) error {
	scr.state.SetContext(ctx)
	defer scr.state.RemoveContext()

	if err := scr.state.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.state.SetContext(ctx)
	defer scr.state.RemoveContext()

	logger.Logf(scr.nes, "scripting", "running %s", filename)

	if err := scr.state.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// Digest returns the video digest of every frame published since the script
// was created.
func (scr *Script) Digest() string {
	return scr.video.Hash()
}

func (scr *Script) print(L *lua.LState) int {
	s := strings.Builder{}
	for i := 1; i <= L.GetTop(); i++ {
		if i > 1 {
			s.WriteString("\t")
		}
		s.WriteString(L.Get(i).String())
	}
	s.WriteString("\n")
	io.WriteString(scr.output, s.String())
	return 0
}

// count returns the optional count argument. the count must be positive.
func count(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 1 {
		L.ArgError(1, "count must be positive")
	}
	return n
}

// raise converts a Go error into a Lua error.
func raise(L *lua.LState, err error) int {
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) tick(L *lua.LState) int {
	n := count(L)
	for range n {
		if err := scr.nes.Tick(); err != nil {
			return raise(L, err)
		}
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := count(L)
	for range n {
		if err := scr.nes.StepInstruction(nil); err != nil {
			return raise(L, err)
		}
	}
	return 0
}

func (scr *Script) frame(L *lua.LState) int {
	return raise(L, scr.nes.RunForFrameCount(count(L), nil))
}

func address(L *lua.LState) uint16 {
	a := L.CheckInt(1)
	if a < 0 || a > 0xffff {
		L.ArgError(1, fmt.Sprintf("address out of range: %#x", a))
	}
	return uint16(a)
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.nes.Mem.Peek(address(L))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := address(L)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range: %#x", v))
	}
	return raise(L, scr.nes.Mem.Poke(addr, uint8(v)))
}

func (scr *Script) reg(L *lua.LState) int {
	mc := scr.nes.CPU
	var v int
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		v = int(mc.A.Value())
	case "X":
		v = int(mc.X.Value())
	case "Y":
		v = int(mc.Y.Value())
	case "SP":
		v = int(mc.SP.Value())
	case "PC":
		v = int(mc.PC.Address())
	case "P":
		v = int(mc.Status.Value())
	default:
		L.ArgError(1, "unknown register")
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) joypad(L *lua.LState, pressed bool) int {
	port := L.CheckInt(1)
	button, err := controllers.ParseButton(L.CheckString(2))
	if err != nil {
		return raise(L, err)
	}
	return raise(L, scr.nes.Input.PushEvent(input.Event{
		Port:    port,
		Button:  button,
		Pressed: pressed,
	}))
}

func (scr *Script) press(L *lua.LState) int {
	return scr.joypad(L, true)
}

func (scr *Script) release(L *lua.LState) int {
	return scr.joypad(L, false)
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.nes.Clock.CPUCycles))
	return 1
}

func (scr *Script) dots(L *lua.LState) int {
	L.Push(lua.LNumber(scr.nes.Clock.PPUDots))
	return 1
}

func (scr *Script) framenum(L *lua.LState) int {
	L.Push(lua.LNumber(scr.nes.PPU.FrameNum))
	return 1
}

func (scr *Script) scanline(L *lua.LState) int {
	L.Push(lua.LNumber(scr.nes.PPU.Scanline))
	return 1
}

func (scr *Script) dot(L *lua.LState) int {
	L.Push(lua.LNumber(scr.nes.PPU.Dot))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	scr.nes.Reset()
	return 0
}

func (scr *Script) power(L *lua.LState) int {
	scr.nes.PowerOn()
	scr.video.ResetDigest()
	return 0
}

func (scr *Script) digest(L *lua.LState) int {
	L.Push(lua.LString(scr.video.Hash()))
	return 1
}

func (scr *Script) screenshot(L *lua.LState) int {
	filename := L.CheckString(1)
	scale := L.OptInt(2, 1)
	return raise(L, screenshot.Save(filename, scr.nes.PPU.LastFrame(), scr.nes.Spec, scale))
}
