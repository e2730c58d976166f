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

// Package scripting runs Lua scripts against the emulation. Scripts can step
// the emulation, inspect and change memory, press joypad buttons, and take
// digests and screenshots of the video output.
//
// Functions are installed in a global table named "nes":
//
//	nes.tick([n])              run n CPU cycles
//	nes.step([n])              run n CPU instructions
//	nes.frame([n])             run until n frames have been published
//	nes.peek(addr)             read memory without side effects
//	nes.poke(addr, value)      write memory without side effects
//	nes.reg(name)              value of CPU register A, X, Y, SP, PC or P
//	nes.press(port, button)    press joypad button from the next frame
//	nes.release(port, button)  release joypad button from the next frame
//	nes.cycles()               CPU cycles since power on
//	nes.dots()                 PPU dots since power on
//	nes.framenum()             number of the frame being drawn
//	nes.scanline()             current PPU scanline
//	nes.dot()                  current PPU dot
//	nes.reset()                press the reset button
//	nes.power()                power cycle the console
//	nes.digest()               digest of the video output so far
//	nes.screenshot(file, [n])  save the last frame as a PNG scaled by n
//
// The Lua print function writes to the io.Writer given to NewScript().
package scripting
