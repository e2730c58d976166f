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
	"strings"
)

// Joypad is the standard controller. It implements the memory.InputPort
// interface.
type Joypad struct {
	buttons uint8
	strobe  bool
	shift   uint8
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	return &Joypad{}
}

func (j *Joypad) String() string {
	s := strings.Builder{}
	s.WriteString("joypad: ")
	for i, c := range "ABsSUDLR" {
		if j.buttons&(1<<i) != 0 {
			s.WriteRune(c)
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Press a button.
func (j *Joypad) Press(b Button) {
	j.buttons |= uint8(b)
	j.reload()
}

// Release a button.
func (j *Joypad) Release(b Button) {
	j.buttons &^= uint8(b)
	j.reload()
}

// SetButtons sets the state of all buttons at once.
func (j *Joypad) SetButtons(buttons uint8) {
	j.buttons = buttons
	j.reload()
}

// Buttons returns the state of all buttons.
func (j *Joypad) Buttons() uint8 {
	return j.buttons
}

// IsPressed returns true if the button is pressed.
func (j *Joypad) IsPressed(b Button) bool {
	return j.buttons&uint8(b) == uint8(b)
}

// while the strobe is high the register is continuously loaded
func (j *Joypad) reload() {
	if j.strobe {
		j.shift = j.buttons
	}
}

// Strobe implements the memory.InputPort interface.
func (j *Joypad) Strobe(data uint8) {
	j.strobe = data&0x01 == 0x01
	j.reload()
}

// Read implements the memory.InputPort interface.
func (j *Joypad) Read() uint8 {
	if j.strobe {
		return j.buttons & 0x01
	}
	v := j.shift & 0x01
	j.shift = j.shift>>1 | 0x80
	return v
}

// Peek implements the memory.InputPort interface.
func (j *Joypad) Peek() uint8 {
	if j.strobe {
		return j.buttons & 0x01
	}
	return j.shift & 0x01
}

// State of the joypad, suitable for serialisation.
type State struct {
	Buttons uint8
	Strobe  bool
	Shift   uint8
}

// SaveState returns the state of the joypad.
func (j *Joypad) SaveState() State {
	return State{
		Buttons: j.buttons,
		Strobe:  j.strobe,
		Shift:   j.shift,
	}
}

// RestoreState sets the state of the joypad.
func (j *Joypad) RestoreState(s State) {
	j.buttons = s.Buttons
	j.strobe = s.Strobe
	j.shift = s.Shift
}
