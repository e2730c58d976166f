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

// Package memorymap describes the address space of the NES as seen by the CPU.
// The MapAddress() function resolves an address to the area that owns it and
// normalises the address to the primary mirror of that area.
//
// Resolution is by fixed priority: the PPU register window, the IO/APU
// window, the cartridge window and finally the internal RAM. Every 16 bit
// address belongs to exactly one area.
package memorymap
