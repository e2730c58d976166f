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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/test"
)

type clock struct{}

func (clock) Cycles() uint64 {
	return 0
}

func TestEnvironment(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation, clock{}, 0)
	test.ExpectSuccess(t, env.IsMainEmulation())
	test.ExpectSuccess(t, env.AllowLogging())

	env = environment.NewEnvironment("rewind", clock{}, 0)
	test.ExpectFailure(t, env.IsMainEmulation())
	test.ExpectFailure(t, env.AllowLogging())
	test.ExpectSuccess(t, env.IsEmulation("rewind"))

	// a nil environment is treated as the main emulation
	var nilenv *environment.Environment
	test.ExpectSuccess(t, nilenv.AllowLogging())
}
