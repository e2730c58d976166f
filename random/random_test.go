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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/random"
	"github.com/jetsetilly/gophernes/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) Cycles() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	c := &clock{cycles: 1000}
	a := random.NewRandom(c, 10)
	b := random.NewRandom(c, 10)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	fa := make([]uint8, 64)
	fb := make([]uint8, 64)
	a.Fill(fa)
	b.Fill(fb)
	test.ExpectEquality(t, string(fa), string(fb))

	// moving the clock changes the sequence
	c.cycles++
	b.Fill(fb)
	test.ExpectInequality(t, string(fa), string(fb))
}
