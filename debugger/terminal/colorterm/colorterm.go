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

// Package colorterm implements the Terminal interface for the gophernes
// debugger. It supports color output, history and basic line editing.
package colorterm

import (
	"bufio"
	"os"
	"strings"
	"unicode"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm/easyterm/ansi"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader   *bufio.Reader
	history  []string
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	ct.reader = bufio.NewReader(os.Stdin)
	ct.history = ct.history[:0]
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input is echoed as it is typed
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
		s = wrap(s, ct.Geometry().Cols)
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleCPUStep:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleVideoStep:
		ct.TermPrint(ansi.DimPens["yellow"])
	case terminal.StyleInstrument:
		ct.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}

// wrap breaks the string at spaces so that no line is longer than width.
// a width of zero means the terminal size is unknown.
func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}

	var b strings.Builder
	n := 0
	for i, w := range strings.Fields(s) {
		if i > 0 {
			if n+1+len(w) > width {
				b.WriteString("\n")
				n = 0
			} else {
				b.WriteString(" ")
				n++
			}
		}
		b.WriteString(w)
		n += len(w)
	}
	return b.String()
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	var input []rune
	hist := len(ct.history)

	redraw := func() {
		ct.TermPrint(easyterm.ClearLine)
		if !ct.silenced {
			ct.TermPrint(ansi.PenStyles["bold"])
			ct.TermPrint(prompt.String())
			ct.TermPrint(ansi.NormalPen)
		}
		ct.TermPrint(string(input))
	}
	redraw()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(input) == 0 {
				ct.TermPrint("\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
			ct.TermPrint("\n")
			s := strings.TrimSpace(string(input))
			if s != "" && (len(ct.history) == 0 || ct.history[len(ct.history)-1] != s) {
				ct.history = append(ct.history, s)
			}
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				redraw()
			}

		case easyterm.KeyEsc:
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if hist > 0 {
					hist--
					input = []rune(ct.history[hist])
					redraw()
				}
			case easyterm.CursorDown:
				if hist < len(ct.history)-1 {
					hist++
					input = []rune(ct.history[hist])
				} else {
					hist = len(ct.history)
					input = input[:0]
				}
				redraw()
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, r)
				ct.TermPrint(string(r))
			}
		}
	}
}
