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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/test"
)

func TestHalted(t *testing.T) {
	test.ExpectEquality(t, govern.Running.Halted(), false)
	test.ExpectEquality(t, govern.Stepping.Halted(), false)
	test.ExpectEquality(t, govern.Paused.Halted(), true)
	test.ExpectEquality(t, govern.Ending.Halted(), true)
}

func TestModeString(t *testing.T) {
	test.ExpectEquality(t, govern.ModeHeadless.String(), "Headless")
	test.ExpectEquality(t, govern.ModePerformance.String(), "Performance")
	test.ExpectEquality(t, govern.ModeRegress.String(), "Regress")
	test.ExpectEquality(t, govern.ModeNone.String(), "")
}
