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

package sdlplay

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/hardware/television/specification"
	"github.com/jetsetilly/gophernes/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyBindings(t *testing.T) {
	b, ok := bindKey(sdl.K_x)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.port, 0)
	test.ExpectEquality(t, b.button, controllers.ButtonA)

	b, ok = bindKey(sdl.K_w)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.port, 1)
	test.ExpectEquality(t, b.button, controllers.ButtonUp)

	_, ok = bindKey(sdl.K_ESCAPE)
	test.ExpectFailure(t, ok)

	// every button on both joypads is bound exactly once
	var seen [2]uint8
	for _, b := range keyBindings {
		test.ExpectEquality(t, seen[b.port]&uint8(b.button), 0)
		seen[b.port] |= uint8(b.button)
	}
	test.ExpectEquality(t, seen[0], 0xff)
	test.ExpectEquality(t, seen[1], 0xff)
}

func TestConvertFrame(t *testing.T) {
	spec := specification.SpecNTSC
	frame := &television.Frame{}
	frame.SetPixel(1, 0, 0x21)
	frame.SetPixel(0, 1, 0x0f)

	pixels := make([]byte, television.FrameWidth*television.FrameHeight*pixelDepth)
	convertFrame(pixels, frame, spec)

	check := func(x, y int, v uint16) {
		t.Helper()
		c := spec.GetColor(v)
		i := (y*television.FrameWidth + x) * pixelDepth
		test.ExpectEquality(t, pixels[i], c.R)
		test.ExpectEquality(t, pixels[i+1], c.G)
		test.ExpectEquality(t, pixels[i+2], c.B)
		test.ExpectEquality(t, pixels[i+3], c.A)
	}
	check(0, 0, 0)
	check(1, 0, 0x21)
	check(0, 1, 0x0f)
}
