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

package disassembly

import (
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep writes the entries that contain the search string to output. Returns
// the number of matching entries.
func Grep(output io.Writer, ents []Entry, scope GrepScope, search string, caseSensitive bool) int {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	var n int
	for _, e := range ents {
		var s string

		switch scope {
		case GrepMnemonic:
			s = e.Mnemonic()
		case GrepOperand:
			s = e.Operand()
		case GrepAll:
			s = e.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			Write(output, []Entry{e})
			n++
		}
	}

	return n
}
