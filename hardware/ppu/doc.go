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

// Package ppu implements the picture processing unit of the NES. The PPU is
// advanced one dot at a time by calling Tick(). The CPU reaches the PPU
// through the eight registers mirrored in the 0x2000 to 0x3fff range of the
// CPU address space.
//
// A frame is a grid of scanlines and dots. There are 341 dots on every
// scanline. The first 240 scanlines are visible, the scanline after that is
// the post-render scanline and vblank begins on the scanline defined by the
// console specification. The last scanline of the frame is the pre-render
// scanline. On NTSC consoles the last dot of the pre-render scanline is
// skipped on odd frames, if rendering is enabled.
//
// Scrolling follows the "loopy" model of the internal registers: v (the
// current VRAM address), t (the temporary VRAM address), x (fine X scroll)
// and w (the write toggle shared by PPUSCROLL and PPUADDR).
//
// Background tiles are fetched eight dots at a time into 16 bit shift
// registers. Sprites for the next scanline are evaluated and their patterns
// fetched at dot 257. This is accurate to the scanline but not to the
// individual memory accesses of sprite evaluation.
//
// Completed frames are published at the end of the pre-render scanline, at the
// wrap from the last scanline to scanline zero. Frames are double buffered so
// the published frame is never partially drawn.
package ppu
