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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/debugger/terminal"
)

func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	s = fmt.Sprintf(s, a...)

	// remove all trailing newlines, and return if the resulting string is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	dbg.term.TermPrintLine(sty, s)

	if sty != terminal.StyleEcho {
		if err := dbg.scribe.WriteOutput(s); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}
}

// styleWriter implements the io.Writer interface. it is useful for when an
// io.Writer is required and you want to direct the output to the terminal.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, "%s", string(p))
	return len(p), nil
}
