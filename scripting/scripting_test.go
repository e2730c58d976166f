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

package scripting_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/scripting"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/test/testrom"
)

// loops forever: INX; JMP $8000
func newScript(t *testing.T) (*hardware.NES, *scripting.Script, *bytes.Buffer) {
	t.Helper()
	cart, err := testrom.New().At(0x8000, 0xe8, 0x4c, 0x00, 0x80).Cartridge()
	test.DemandSuccess(t, err)
	nes, err := hardware.NewNES(cart, hardware.NewOptions())
	test.DemandSuccess(t, err)

	out := &bytes.Buffer{}
	scr := scripting.NewScript(nes, out)
	t.Cleanup(scr.Close)

	return nes, scr, out
}

func TestRegisters(t *testing.T) {
	_, scr, out := newScript(t)

	// the first step completes the reset sequence
	err := scr.Run(context.Background(), `
		nes.step(2)
		print(nes.reg("x"), nes.reg("PC"))
		nes.step()
		print(nes.reg("PC"))
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "1\t32769\n32768\n")

	err = scr.Run(context.Background(), `nes.reg("Q")`)
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))

	err = scr.Run(context.Background(), `nes.step(0)`)
	test.ExpectFailure(t, err)
}

func TestMemory(t *testing.T) {
	nes, scr, out := newScript(t)

	err := scr.Run(context.Background(), `
		nes.poke(0x10, 0x42)
		print(nes.peek(0x10), nes.peek(0x810))
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "66\t66\n")
	test.ExpectEquality(t, nes.Mem.Peek(0x0010), 0x42)

	test.ExpectFailure(t, scr.Run(context.Background(), `nes.poke(0x2000, 1)`))
	test.ExpectFailure(t, scr.Run(context.Background(), `nes.poke(0x10, 0x100)`))
	test.ExpectFailure(t, scr.Run(context.Background(), `nes.peek(0x10000)`))
}

func TestTiming(t *testing.T) {
	nes, scr, out := newScript(t)

	err := scr.Run(context.Background(), `
		nes.tick(10)
		print(nes.cycles(), nes.dots())
		nes.frame(2)
		print(nes.framenum())
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "10\t30\n2\n")
	test.ExpectEquality(t, nes.PPU.FrameNum, uint64(2))

	out.Reset()
	err = scr.Run(context.Background(), `
		nes.power()
		print(nes.cycles(), nes.framenum(), nes.scanline(), nes.dot())
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "0\t0\t0\t0\n")
}

func TestJoypad(t *testing.T) {
	nes, scr, _ := newScript(t)

	err := scr.Run(context.Background(), `
		nes.press(0, "a")
		nes.press(1, "Start")
		nes.frame()
		nes.release(1, "start")
	`)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nes.Joypads[0].IsPressed(controllers.ButtonA))
	test.ExpectSuccess(t, nes.Joypads[1].IsPressed(controllers.ButtonStart))

	// release has not yet been applied
	test.ExpectSuccess(t, scr.Run(context.Background(), `nes.frame()`))
	test.ExpectFailure(t, nes.Joypads[1].IsPressed(controllers.ButtonStart))

	test.ExpectFailure(t, scr.Run(context.Background(), `nes.press(2, "a")`))
	test.ExpectFailure(t, scr.Run(context.Background(), `nes.press(0, "turbo")`))
}

func TestDigest(t *testing.T) {
	_, scrA, outA := newScript(t)
	_, scrB, outB := newScript(t)

	src := `nes.frame(3); print(nes.digest())`
	test.ExpectSuccess(t, scrA.Run(context.Background(), src))
	test.ExpectSuccess(t, scrB.Run(context.Background(), src))
	test.ExpectEquality(t, outA.String(), outB.String())
	test.ExpectEquality(t, scrA.Digest(), scrB.Digest())
	test.ExpectInequality(t, scrA.Digest(), "")
}

func TestScreenshot(t *testing.T) {
	_, scr, _ := newScript(t)
	fn := filepath.Join(t.TempDir(), "shot.png")

	err := scr.Run(context.Background(), fmt.Sprintf(`nes.frame(); nes.screenshot(%q, 2)`, fn))
	test.ExpectSuccess(t, err)

	fi, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)

	test.ExpectFailure(t, scr.Run(context.Background(), fmt.Sprintf(`nes.screenshot(%q, 9)`, fn)))
}

func TestRunFile(t *testing.T) {
	_, scr, out := newScript(t)
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`print("hello")`), 0644))

	test.ExpectSuccess(t, scr.RunFile(context.Background(), fn))
	test.ExpectEquality(t, out.String(), "hello\n")

	test.ExpectFailure(t, scr.RunFile(context.Background(), fn+".missing"))
}

func TestCancel(t *testing.T) {
	_, scr, _ := newScript(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectFailure(t, scr.Run(ctx, `while true do nes.step() end`))
}
