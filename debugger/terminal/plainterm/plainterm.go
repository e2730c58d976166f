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

// Package plainterm implements the Terminal interface for the gophernes
// debugger. It's a simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gophernes/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input      *bufio.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
	silenced   bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. If either argument is nil then stdin or stdout is used
// as appropriate.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}

	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}

	if f, ok := input.(*os.File); ok {
		pt.realInput = term.IsTerminal(int(f.Fd()))
	}
	if f, ok := output.(*os.File); ok {
		pt.realOutput = term.IsTerminal(int(f.Fd()))
	}

	return pt
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	// insert prompt into output stream
	if pt.realInput && !pt.silenced {
		io.WriteString(pt.output, prompt.String())
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		// a final line without a newline is still a valid line
		if err == io.EOF && len(s) > 0 {
			return strings.TrimSpace(s), nil
		}
		return "", err
	}

	return strings.TrimSpace(s), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput && pt.realOutput
}
