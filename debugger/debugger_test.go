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

package debugger_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/debugger"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/test/testrom"
)

// a single line of input and a string that is expected to be found in the
// last line of output produced by that input. an empty string means the
// output is not checked
type step struct {
	input    string
	expected string
}

type mockTerm struct {
	t      *testing.T
	seq    []step
	curr   int
	output []string

	// every line of output in the session
	all []string
}

func newMockTerm(t *testing.T, seq ...step) *mockTerm {
	return &mockTerm{t: t, seq: seq}
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	switch sty {
	case terminal.StyleEcho:
		return
	case terminal.StyleError:
		s = "* " + s
	}
	trm.output = append(trm.output, s)
	trm.all = append(trm.all, s)
}

// cmpOutput compares the expected string with the *last line* of the most
// recent output
func (trm *mockTerm) cmpOutput() {
	trm.t.Helper()

	st := trm.seq[trm.curr-1]
	if st.expected == "" {
		return
	}

	if len(trm.output) == 0 {
		trm.t.Errorf("%s: unexpected debugger output (nothing) should contain (%s)", st.input, st.expected)
		return
	}

	l := trm.output[len(trm.output)-1]
	if !strings.Contains(l, st.expected) {
		trm.t.Errorf("%s: unexpected debugger output (%s) should contain (%s)", st.input, l, st.expected)
	}
}

func (trm *mockTerm) TermRead(_ terminal.Prompt) (string, error) {
	if trm.curr > 0 {
		trm.cmpOutput()
	}
	if trm.curr >= len(trm.seq) {
		return "", io.EOF
	}
	trm.output = trm.output[:0]
	trm.curr++
	return trm.seq[trm.curr-1].input, nil
}

// loops forever: INX; JMP $8000
func newNES(t *testing.T) *hardware.NES {
	t.Helper()
	cart, err := testrom.New().At(0x8000, 0xe8, 0x4c, 0x00, 0x80).Cartridge()
	test.DemandSuccess(t, err)
	nes, err := hardware.NewNES(cart, hardware.NewOptions())
	test.DemandSuccess(t, err)
	return nes
}

func TestDebugger(t *testing.T) {
	nes := newNES(t)
	dir := t.TempDir()
	state := filepath.Join(dir, "state")

	trm := newMockTerm(t,
		step{"help", "QUIT"},
		step{"help step", "breakpoints are honoured"},
		step{"break $8001", "breakpoint added: $8001"},
		step{"BREAK 0x8001", "breakpoint already exists: $8001"},
		step{"run", "inx"},
		step{"regs", "X=01"},
		step{"run; regs", "X=02"},
		step{"clear", "breakpoints cleared"},
		step{"step 2", ""},
		step{"regs", "X=03"},
		step{"poke $10 1 2 3; peek $10 4", "$0010: 01 02 03 00"},
		step{"peek $0810", "$0810: 01"},
		step{"disasm $8000 2", "8001  4c 00 80  JMP $8000"},
		step{"grep jmp", "8001  4c 00 80  JMP $8000"},
		step{"grep", "* GREP: missing argument: text"},
		step{"poke $2000 1", "* POKE"},
		step{"poke $10", "* POKE: missing argument: value"},
		step{"peek 0x10000", "* PEEK"},
		step{"frobnicate", "* unknown command: frobnicate"},
		step{"regs now", "* REGS: too many arguments: now"},
		step{"restore", "* RESTORE: no snapshot"},
		step{"snapshot", "snapshot taken"},
		step{"step 10", ""},
		step{"restore; regs", "X=03"},
		step{"save " + state, "state saved"},
		step{"frame 2", "frame: 2"},
		step{"load " + state, "state loaded: frame 0"},
		step{"regs", "X=03"},
		step{"cycle", "cycles="},
		step{"ppu", "cycles="},
		step{"last", ""},
		step{"quit", ""},
		step{"regs", "this command is never run"},
	)

	dbg, err := debugger.NewDebugger(nes, trm)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dbg.State(), govern.Initialising)

	err = dbg.Start("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	// the final REGS command was not consumed
	test.ExpectEquality(t, trm.curr, len(trm.seq)-1)
}

func TestDebuggerPrefs(t *testing.T) {
	// preferences are saved to the local resource directory
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gophernes", 0o700))

	nes := newNES(t)
	trm := newMockTerm(t,
		step{"prefs", "rewind.maxentries :: 100"},
		step{"prefs set rewind.freq 2", "rewind.freq set to 2"},
		step{"prefs set rewind.freq 0", "frequency must be at least 1"},
		step{"prefs set rewind.colour red", "unknown preference: rewind.colour"},
		step{"prefs set rewind.freq", "* PREFS: missing argument: value"},
		step{"prefs frob", "* PREFS: unknown option: frob"},
		step{"prefs save", "preferences saved"},
		step{"quit", ""},
	)

	dbg, err := debugger.NewDebugger(nes, trm)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start(""))

	data, err := os.ReadFile(filepath.Join(".gophernes", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "rewind.freq :: 2\nrewind.maxentries :: 100\n")

	// a new debugger loads the saved preferences
	trm = newMockTerm(t,
		step{"prefs", "rewind.maxentries :: 100"},
		step{"quit", ""},
	)
	dbg, err = debugger.NewDebugger(newNES(t), trm)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, strings.Contains(strings.Join(trm.all, "\n"), "rewind.freq :: 2"), true)
}

func TestDebugger_withNonExistantInitScript(t *testing.T) {
	nes := newNES(t)
	trm := newMockTerm(t,
		step{"regs", "PC="},
	)

	dbg, err := debugger.NewDebugger(nes, trm)
	test.DemandSuccess(t, err)

	// a missing script is reported but does not stop the debugger
	err = dbg.Start(filepath.Join(t.TempDir(), "non_existent_script"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dbg.State(), govern.Ending)
}

func TestDebugger_withInitScript(t *testing.T) {
	nes := newNES(t)
	dir := t.TempDir()

	scr := filepath.Join(dir, "init")
	err := os.WriteFile(scr, []byte("# comment\nbreak $8001\nrun\n"), 0644)
	test.DemandSuccess(t, err)

	rec := filepath.Join(dir, "recorded")
	trm := newMockTerm(t,
		step{"regs", "X=01"},
		step{"script record " + rec, "recording script"},
		step{"run", "inx"},
		step{"script end", ""},
		step{"script " + rec, "inx"},
		step{"regs", "X=03"},
	)

	dbg, err := debugger.NewDebugger(nes, trm)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start(scr))

	b, err := os.ReadFile(rec)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "run\n# "))
}

func TestDebuggerInput(t *testing.T) {
	nes := newNES(t)
	dir := t.TempDir()
	rec := filepath.Join(dir, "input")
	dot := filepath.Join(dir, "cpu.dot")

	trm := newMockTerm(t,
		step{"press 0 a", ""},
		step{"press 2 a", "* PRESS: input: invalid port: 2"},
		step{"press 0 turbo", "* PRESS"},
		step{"joypad", "1: joypad: --------"},
		step{"frame", ""},
		step{"input record " + rec, "recording input"},
		step{"press 1 start", ""},
		step{"frame", ""},
		step{"joypad", "1: joypad: ---S----"},
		step{"input stop", "(1 events)"},
		step{"rewind", ""},
		step{"rewind 1", "frame: "},
		step{"compare lock", ""},
		step{"compare", "(locked)"},
		step{"memviz " + dot, "memviz written"},
		step{"memviz " + dot + " gpu", "* MEMVIZ: unknown option: gpu"},
	)

	dbg, err := debugger.NewDebugger(nes, trm)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start(""))

	test.ExpectSuccess(t, nes.Joypads[0].IsPressed(controllers.ButtonA))

	b, err := os.ReadFile(rec)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "1 START PRESS"))

	fi, err := os.Stat(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)
}
