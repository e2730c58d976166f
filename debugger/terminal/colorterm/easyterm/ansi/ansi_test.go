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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gophernes/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("Cyan", "bold", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[36;1m")

	s, err = ansi.ColorBuild("", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("mauve", "", false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "blink", false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.Pens["yellow"], "\033[93m")
	test.ExpectEquality(t, ansi.PenStyles["underline"], "\033[4m")
}
