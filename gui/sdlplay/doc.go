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

// Package sdlplay is a simple SDL window for playing the emulation. Frames
// published by the PPU are presented in the window and keyboard input is
// forwarded to the joypads through the input package's event queue.
//
// SDL must be used from the main thread. The Run() function should be called
// from the program's main goroutine, which should be locked to the main
// thread with runtime.LockOSThread().
package sdlplay
