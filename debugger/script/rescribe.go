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

package script

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/terminal"
)

// Sentinal errors.
const (
	ScriptFileUnavailable = "script: file unavailable: %v"
	ScriptFileError       = "script: file error: %v"
)

// check if line is prepended with commentLine (ignoring leading spaces)
func isOutputLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe represents an previously scribed script. The type implements the
// terminal.Input interface.
type Rescribe struct {
	name   string
	lines  []string
	lineCt int
}

// RescribeScript is the preferred method of initialisation for the Rescribe
// type.
func RescribeScript(scriptfile string) (*Rescribe, error) {
	f, err := os.Open(scriptfile)
	if err != nil {
		return nil, curated.Errorf(ScriptFileUnavailable, err)
	}
	defer f.Close()

	return NewRescribe(scriptfile, f)
}

// NewRescribe reads the script from an io.Reader. The name is used to
// identify the script in messages.
func NewRescribe(name string, r io.Reader) (*Rescribe, error) {
	scr := &Rescribe{name: name}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" || isOutputLine(l) {
			continue
		}
		scr.lines = append(scr.lines, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ScriptFileError, err)
	}

	return scr, nil
}

func (scr *Rescribe) String() string {
	return scr.name
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface. Returns io.EOF when
// there are no more lines in the script.
func (scr *Rescribe) TermRead(_ terminal.Prompt) (string, error) {
	if scr.lineCt >= len(scr.lines) {
		return "", io.EOF
	}
	scr.lineCt++
	return scr.lines[scr.lineCt-1], nil
}
