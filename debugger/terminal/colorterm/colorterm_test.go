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

package colorterm

import (
	"testing"

	"github.com/jetsetilly/gophernes/test"
)

func TestWrap(t *testing.T) {
	test.ExpectEquality(t, wrap("short line", 0), "short line")
	test.ExpectEquality(t, wrap("short line", 80), "short line")
	test.ExpectEquality(t, wrap("step cycle frame run regs", 11), "step cycle\nframe run\nregs")
}
