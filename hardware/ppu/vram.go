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

package ppu

import (
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

func (p *PPU) vramRead(addr uint16) uint8 {
	addr &= 0x3fff
	switch {
	case addr < 0x2000:
		return p.cart.AccessCHR(addr)
	case addr < 0x3f00:
		return p.ciram[p.nametableAddress(addr)]
	}
	return p.readPalette(addr)
}

func (p *PPU) vramWrite(addr uint16, data uint8) {
	addr &= 0x3fff
	switch {
	case addr < 0x2000:
		p.cart.AccessCHRVolatile(addr, data)
	case addr < 0x3f00:
		p.ciram[p.nametableAddress(addr)] = data
	default:
		p.palette[paletteIndex(addr)] = data & 0x3f
	}
}

// PeekVRAM returns the value at the address in the PPU address space without
// side effects.
func (p *PPU) PeekVRAM(addr uint16) uint8 {
	return p.vramRead(addr)
}

// nametableAddress maps an address in the 0x2000 to 0x3eff range to an index
// into CIRAM. Only four screen mirroring uses more than 2K of CIRAM
func (p *PPU) nametableAddress(addr uint16) uint16 {
	idx := (addr - 0x2000) & 0x0fff
	table := idx >> 10
	offset := idx & 0x03ff

	switch p.cart.Mirroring() {
	case mapper.MirrorHorizontal:
		table >>= 1
	case mapper.MirrorVertical:
		table &= 1
	case mapper.MirrorSingleLower:
		table = 0
	case mapper.MirrorSingleUpper:
		table = 1
	}

	return table<<10 | offset
}

// the backdrop entries of the sprite palettes mirror the background palettes
func paletteIndex(addr uint16) uint16 {
	i := addr & 0x1f
	if i&0x13 == 0x10 {
		i &^= 0x10
	}
	return i
}

func (p *PPU) readPalette(addr uint16) uint8 {
	v := p.palette[paletteIndex(addr)]
	if p.mask&maskGreyscale == maskGreyscale {
		v &= 0x30
	}
	return v
}
