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

package random

import (
	"math/rand"
)

// Clock is the source of emulation time for the Random type.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock
	seed  int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock, seed int64) *Random {
	return &Random{
		clock: clock,
		seed:  seed,
	}
}

// Seed returns the seed the generator was created with.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Source returns a generator for a sequence of numbers. The sequence depends
// only on the seed and the clock at the moment Source() is called.
func (rnd *Random) Source() *rand.Rand {
	return rand.New(rand.NewSource(rnd.seed + int64(rnd.clock.Cycles())))
}

// Intn returns a number in the range 0 to n-1 for the current clock value.
func (rnd *Random) Intn(n int) int {
	return rnd.Source().Intn(n)
}

// Fill the slice with random bytes. A single sequence is used for the
// entire slice.
func (rnd *Random) Fill(b []uint8) {
	src := rnd.Source()
	for i := range b {
		b[i] = uint8(src.Intn(0x100))
	}
}
