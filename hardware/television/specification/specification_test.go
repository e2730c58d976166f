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

package specification_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gophernes/hardware/television/specification"
	"github.com/jetsetilly/gophernes/test"
)

func TestGetSpec(t *testing.T) {
	for _, id := range specification.SpecList {
		spec, ok := specification.GetSpec(id)
		test.ExpectSuccess(t, ok, id)
		test.ExpectEquality(t, spec.ID, id)
		test.ExpectEquality(t, spec.ScanlinePreRender, spec.ScanlinesTotal-1)
		test.ExpectSuccess(t, spec.Ratio.Validate(), id)
		test.ExpectSuccess(t, spec.ScanlineVBlank > specification.VisibleScanlines, id)
	}

	spec, ok := specification.GetSpec(" pal ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, spec.ID, "PAL")

	_, ok = specification.GetSpec("SECAM")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, specification.SpecNTSC.DotsPerFrame(), 89342)
}

func TestGetColor(t *testing.T) {
	ntsc := specification.SpecNTSC
	pal := specification.SpecPAL

	test.ExpectEquality(t, ntsc.GetColor(0x00), color.RGBA{84, 84, 84, 255})
	test.ExpectEquality(t, ntsc.GetColor(0x30), color.RGBA{236, 238, 236, 255})

	// bits above the palette index are emphasis bits
	c := ntsc.GetColor(0x30 | specification.EmphasisRed)
	test.ExpectEquality(t, c.R, uint8(236))
	test.ExpectInequality(t, c.G, uint8(238))
	test.ExpectInequality(t, c.B, uint8(236))

	// red and green are swapped for PAL
	c = pal.GetColor(0x30 | specification.EmphasisRed)
	test.ExpectEquality(t, c.G, uint8(238))
	test.ExpectInequality(t, c.R, uint8(236))

	// the black column is unaffected
	test.ExpectEquality(t, ntsc.GetColor(0x0f|specification.EmphasisBlue), color.RGBA{0, 0, 0, 255})
}
