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
	"testing"

	"github.com/jetsetilly/gophernes/test"
)

func TestBreakpoints(t *testing.T) {
	var bp breakpoints
	test.ExpectEquality(t, bp.String(), "no breakpoints")
	test.ExpectFailure(t, bp.check(0x8000))

	test.ExpectSuccess(t, bp.add(0x8005))
	test.ExpectSuccess(t, bp.add(0x8000))
	test.ExpectFailure(t, bp.add(0x8005))
	test.ExpectSuccess(t, bp.check(0x8000))
	test.ExpectSuccess(t, bp.check(0x8005))
	test.ExpectFailure(t, bp.check(0x8001))
	test.ExpectEquality(t, bp.String(), " 0: $8000\n 1: $8005")

	test.ExpectSuccess(t, bp.drop(0x8000))
	test.ExpectFailure(t, bp.drop(0x8000))
	test.ExpectFailure(t, bp.check(0x8000))

	bp.clear()
	test.ExpectFailure(t, bp.check(0x8005))
}

func TestTokens(t *testing.T) {
	cmds := tokeniseInput("  poke $10 0x20 16 ; ; step")
	test.DemandEquality(t, len(cmds), 2)

	tk := cmds[0]
	test.ExpectEquality(t, tk.remaining(), 4)
	s, ok := tk.get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "poke")

	n, err := tk.number(16, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(0x10))

	s, ok = tk.peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "0x20")
	test.ExpectEquality(t, tk.remainder(), "0x20 16")

	n, err = tk.number(8, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(0x20))
	n, err = tk.number(8, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(16))

	// default value when there are no more tokens
	n, err = tk.number(8, 99)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(99))

	// out of range
	_, err = tokeniseInput("256")[0].number(8, 0)
	test.ExpectFailure(t, err)
}
