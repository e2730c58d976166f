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

package controllers_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/test"
)

func TestParseButton(t *testing.T) {
	b, err := controllers.ParseButton("start")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, controllers.ButtonStart)
	test.ExpectEquality(t, b.String(), "START")

	_, err = controllers.ParseButton("turbo")
	test.ExpectSuccess(t, curated.Is(err, controllers.UnknownButton))
}

func TestJoypad(t *testing.T) {
	j := controllers.NewJoypad()
	j.Press(controllers.ButtonA)
	j.Press(controllers.ButtonStart)
	j.Press(controllers.ButtonRight)
	test.ExpectEquality(t, j.String(), "joypad: A--S---R")

	j.Strobe(1)
	j.Strobe(0)

	expected := []uint8{1, 0, 0, 1, 0, 0, 0, 1}
	for i, e := range expected {
		test.ExpectEquality(t, j.Peek(), e, i)
		test.ExpectEquality(t, j.Read(), e, i)
	}

	// official joypads return 1 after the eighth read
	for range 4 {
		test.ExpectEquality(t, j.Read(), uint8(1))
	}

	// changing buttons does not affect the register until the next strobe
	j.Release(controllers.ButtonA)
	test.ExpectEquality(t, j.Read(), uint8(1))
	j.Strobe(1)
	j.Strobe(0)
	test.ExpectEquality(t, j.Read(), uint8(0))
}

func TestStrobeHigh(t *testing.T) {
	j := controllers.NewJoypad()
	j.Strobe(1)

	// with the strobe high, reads return the state of A
	test.ExpectEquality(t, j.Read(), uint8(0))
	j.Press(controllers.ButtonA)
	test.ExpectEquality(t, j.Read(), uint8(1))
	test.ExpectEquality(t, j.Read(), uint8(1))
	test.ExpectSuccess(t, j.IsPressed(controllers.ButtonA))
}

func TestState(t *testing.T) {
	j := controllers.NewJoypad()
	j.SetButtons(0x5a)
	j.Strobe(1)
	j.Strobe(0)
	j.Read()
	s := j.SaveState()

	a := j.Read()
	j.Read()
	j.RestoreState(s)
	test.ExpectEquality(t, j.Read(), a)
	test.ExpectEquality(t, j.Buttons(), uint8(0x5a))
}
