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

package television_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/hardware/television/specification"
	"github.com/jetsetilly/gophernes/test"
)

func TestFrame(t *testing.T) {
	var f television.Frame
	f.SetPixel(0, 0, 0x30)
	f.SetPixel(255, 239, 0x16)
	test.ExpectEquality(t, f.Pixel(0, 0), uint16(0x30))
	test.ExpectEquality(t, f.Pixel(255, 239), uint16(0x16))
	test.ExpectEquality(t, f.Pixels[len(f.Pixels)-1], uint16(0x16))

	img := f.Image(specification.SpecNTSC)
	test.ExpectEquality(t, img.Bounds().Dx(), television.FrameWidth)
	test.ExpectEquality(t, img.Bounds().Dy(), television.FrameHeight)
	test.ExpectEquality(t, img.RGBAAt(0, 0), specification.Palette[0x30])
	test.ExpectEquality(t, img.RGBAAt(255, 239), specification.Palette[0x16])
	test.ExpectEquality(t, img.RGBAAt(1, 0), specification.Palette[0x00])
}
