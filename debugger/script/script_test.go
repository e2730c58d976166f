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

package script_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/script"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/test"
)

func TestScribe(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "session")

	var scr script.Scribe
	test.ExpectFailure(t, scr.IsActive())
	test.ExpectSuccess(t, scr.StartSession(fn))
	test.ExpectSuccess(t, scr.IsActive())
	test.ExpectSuccess(t, curated.Is(scr.StartSession(fn), script.ScribeActive))

	test.ExpectSuccess(t, scr.WriteInput("STEP"))
	test.ExpectSuccess(t, scr.WriteOutput("8000 INX [2]"))

	// input from a nested script is not recorded
	scr.StartPlayback()
	test.ExpectSuccess(t, scr.WriteInput("REGS"))
	scr.EndPlayback()

	test.ExpectSuccess(t, scr.WriteInput("FRAME 2"))
	test.ExpectSuccess(t, scr.EndSession())
	test.ExpectFailure(t, scr.IsActive())

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "STEP\n# 8000 INX [2]\nFRAME 2\n")

	// file exists so a new session can't be started
	test.ExpectSuccess(t, curated.Is(scr.StartSession(fn), script.ScribeFileExists))

	// and the file can be replayed
	rsc, err := script.RescribeScript(fn)
	test.DemandSuccess(t, err)
	s, err := rsc.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "STEP")
	s, err = rsc.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "FRAME 2")
	_, err = rsc.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)
}

func TestRescribe(t *testing.T) {
	_, err := script.RescribeScript(filepath.Join(t.TempDir(), "missing"))
	test.ExpectSuccess(t, curated.Is(err, script.ScriptFileUnavailable))

	rsc, err := script.NewRescribe("test", strings.NewReader("# comment\n\n  regs  \n  # indented comment\nquit"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, rsc.IsInteractive())
	test.ExpectEquality(t, rsc.String(), "test")

	s, err := rsc.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "regs")
	s, err = rsc.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")
}
