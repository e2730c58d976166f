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

// Package controllers implements the standard NES joypad.
//
// The joypad is an eight bit parallel-in serial-out shift register. Writing 1
// to bit 0 of JOY1 (the strobe) continuously loads the state of the buttons
// into the register. When the strobe returns to 0 the register is shifted by
// every read of the joypad's port. Buttons are reported in the order A, B,
// Select, Start, Up, Down, Left, Right. After the eighth read the official
// joypad returns 1.
package controllers
