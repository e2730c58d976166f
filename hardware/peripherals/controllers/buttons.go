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

package controllers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// UnknownButton is the pattern for errors returned by ParseButton().
const UnknownButton = "controllers: unknown button: %v"

// Button is a bit in the joypad's shift register.
type Button uint8

// List of valid Button values. The values are the bit positions in the shift
// register.
const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

var buttonNames = []struct {
	button Button
	name   string
}{
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonSelect, "SELECT"},
	{ButtonStart, "START"},
	{ButtonUp, "UP"},
	{ButtonDown, "DOWN"},
	{ButtonLeft, "LEFT"},
	{ButtonRight, "RIGHT"},
}

func (b Button) String() string {
	for _, n := range buttonNames {
		if n.button == b {
			return n.name
		}
	}
	return fmt.Sprintf("%#02x", uint8(b))
}

// ParseButton returns the Button with the name. Not case sensitive.
func ParseButton(s string) (Button, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, n := range buttonNames {
		if n.name == s {
			return n.button, nil
		}
	}
	return 0, curated.Errorf(UnknownButton, s)
}
