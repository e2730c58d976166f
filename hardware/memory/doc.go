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

// Package memory implements the bus that connects the CPU to the rest of the
// NES.
//
//	                      /---- PPU (registers 0x2000 to 0x3fff)
//	                      |
//	CPU ---- cpu bus ---- * ---- IO (joypads, OAM DMA, audio)
//	                      |
//	                      |---- Cartridge (0x4020 to 0xffff)
//	                      |
//	                      \---- RAM (0x0000 to 0x1fff)
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The memorymap package contains more detail on this.
//
// Every access updates the open bus value. Reads from addresses, or parts of
// addresses, that nothing drives return the open bus value. For example, the
// upper three bits of the joypad registers.
//
// The Peek() and Poke() functions are for the debugger. They have no effect on
// the open bus value and do not cause side effects in the PPU or joypads.
package memory
