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
	"strconv"
	"strings"
)

// tokens represents a single command entered by the user.
type tokens struct {
	tokens []string
	curr   int
}

func (tk tokens) remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

func (tk tokens) peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// number returns the next token as a number no larger than the bitSize. if
// there are no more tokens the default value is returned.
func (tk *tokens) number(bitSize int, def uint64) (uint64, error) {
	s, ok := tk.get()
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	return n, nil
}

// tokeniseInput splits the input into commands, separated by a semi-colon,
// and each command into tokens.
func tokeniseInput(input string) []*tokens {
	var cmds []*tokens

	for _, c := range strings.Split(input, ";") {
		f := strings.Fields(c)
		if len(f) == 0 {
			continue
		}

		// normalise hex notation
		for i := range f {
			if f[i][0] == '$' {
				f[i] = fmt.Sprintf("0x%s", f[i][1:])
			}
		}

		cmds = append(cmds, &tokens{tokens: f})
	}

	return cmds
}
