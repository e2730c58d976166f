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

package plainterm_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophernes/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("  step \nregs"), out)
	test.ExpectSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{Content: "$8000"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	// last line has no newline
	s, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "regs")

	_, err = pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	// prompt is not written because the input is not a real terminal
	test.ExpectEquality(t, out.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "ignored")
	pt.TermPrintLine(terminal.StyleError, "oops")
	test.ExpectEquality(t, out.String(), "hello\n* oops\n")

	out.Reset()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "oops")
	test.ExpectEquality(t, out.String(), "* oops\n")
}
