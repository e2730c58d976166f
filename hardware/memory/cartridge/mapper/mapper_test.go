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

package mapper_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/test"
)

func TestStateCopy(t *testing.T) {
	s := mapper.State{
		ID:     "NROM",
		PRGRAM: []uint8{1, 2, 3},
	}
	c := s.Copy()
	c.PRGRAM[0] = 100
	test.ExpectEquality(t, s.PRGRAM[0], uint8(1))
	test.ExpectEquality(t, c.ID, "NROM")
	test.ExpectEquality(t, len(c.CHRRAM), 0)
}

func TestMirroringString(t *testing.T) {
	test.ExpectEquality(t, mapper.MirrorVertical.String(), "vertical")
	test.ExpectEquality(t, mapper.MirrorFourScreen.String(), "four screen")
	test.ExpectEquality(t, mapper.Mirroring(99).String(), "unknown mirroring")
}
