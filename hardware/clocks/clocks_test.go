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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/test"
)

func TestValidate(t *testing.T) {
	test.ExpectSuccess(t, clocks.RatioNTSC.Validate())
	test.ExpectSuccess(t, clocks.RatioPAL.Validate())
	test.ExpectSuccess(t, clocks.RatioDendy.Validate())

	for _, r := range []clocks.Ratio{
		{Dots: 0, Cycles: 1},
		{Dots: 3, Cycles: 0},
		{Dots: -3, Cycles: 1},
		{Dots: 1, Cycles: 2},
		{Dots: 1000, Cycles: 1},
	} {
		err := r.Validate()
		test.ExpectFailure(t, err, r)
		test.ExpectSuccess(t, curated.Is(err, clocks.UnsupportedRatio), r)
	}
}

func TestCounterNTSC(t *testing.T) {
	var c clocks.Counter
	for range 100 {
		test.ExpectEquality(t, c.Dots(clocks.RatioNTSC), 3)
	}
	test.ExpectEquality(t, c.CPUCycles, uint64(100))
	test.ExpectEquality(t, c.PPUDots, uint64(300))
	test.ExpectEquality(t, c.Cycles(), uint64(100))
}

func TestCounterPAL(t *testing.T) {
	var c clocks.Counter

	// 3.2 dots per cycle is a pattern of four cycles of three dots and one
	// cycle of four dots
	var pattern []int
	for range 5 {
		pattern = append(pattern, c.Dots(clocks.RatioPAL))
	}
	test.ExpectEquality(t, len(pattern), 5)
	test.ExpectEquality(t, pattern[0]+pattern[1]+pattern[2]+pattern[3]+pattern[4], 16)
	test.ExpectEquality(t, pattern[4], 4)

	for range 995 {
		c.Dots(clocks.RatioPAL)
	}
	test.ExpectEquality(t, c.PPUDots, uint64(3200))
	test.ExpectEquality(t, c.Remainder, 0)

	c.Reset()
	test.ExpectEquality(t, c.CPUCycles, uint64(0))
}

func TestParseRatio(t *testing.T) {
	r, err := clocks.ParseRatio("16/5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, clocks.RatioPAL)
	test.ExpectEquality(t, r.String(), "16/5")

	r, err = clocks.ParseRatio(" 4/1 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, clocks.Ratio{Dots: 4, Cycles: 1})

	for _, s := range []string{"3", "a/1", "3/b", "1/3", "0/0"} {
		_, err = clocks.ParseRatio(s)
		test.ExpectSuccess(t, curated.Is(err, clocks.UnsupportedRatio), s)
	}
}
