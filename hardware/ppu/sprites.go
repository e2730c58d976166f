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

import "math/bits"

// Sprites are the sprites selected for the scanline being drawn. Patterns
// are stored with horizontal flipping already applied.
type Sprites struct {
	Count int
	X     [8]uint8
	Lo    [8]uint8
	Hi    [8]uint8
	Attr  [8]uint8

	// the sprite in the first slot is sprite zero
	Zero bool
}

// evaluateSprites selects the sprites for the next scanline and fetches
// their patterns. the sprite overflow flag is set if more than eight sprites
// are on the scanline. the overflow bug of the hardware is not emulated
func (p *PPU) evaluateSprites() {
	height := 8
	if p.ctrl&ctrlSpriteSize == ctrlSpriteSize {
		height = 16
	}

	p.sprites = Sprites{}

	for i := range 64 {
		y := int(p.OAM[i*4])
		row := p.Scanline - y
		if row < 0 || row >= height {
			continue
		}

		if p.sprites.Count == len(p.sprites.X) {
			p.status |= statusOverflow
			break
		}

		tile := p.OAM[i*4+1]
		attr := p.OAM[i*4+2]

		if attr&0x80 == 0x80 {
			row = height - 1 - row
		}

		var addr uint16
		if height == 8 {
			addr = uint16(p.ctrl&ctrlSpriteTable)<<9 | uint16(tile)<<4 | uint16(row)
		} else {
			addr = uint16(tile&0x01)<<12 | uint16(tile&0xfe)<<4
			if row >= 8 {
				addr += 16
				row -= 8
			}
			addr |= uint16(row)
		}

		lo := p.vramRead(addr)
		hi := p.vramRead(addr + 8)
		if attr&0x40 == 0x40 {
			lo = bits.Reverse8(lo)
			hi = bits.Reverse8(hi)
		}

		n := p.sprites.Count
		p.sprites.X[n] = p.OAM[i*4+3]
		p.sprites.Lo[n] = lo
		p.sprites.Hi[n] = hi
		p.sprites.Attr[n] = attr
		if i == 0 {
			p.sprites.Zero = true
		}
		p.sprites.Count++
	}
}

// pixel returns the first opaque sprite pixel at x
func (s *Sprites) pixel(x int) (pixel uint8, palette uint8, behind bool, zero bool) {
	for i := range s.Count {
		off := x - int(s.X[i])
		if off < 0 || off > 7 {
			continue
		}
		shift := 7 - off
		px := (s.Lo[i]>>shift)&0x01 | ((s.Hi[i]>>shift)&0x01)<<1
		if px == 0 {
			continue
		}
		return px, s.Attr[i] & 0x03, s.Attr[i]&0x20 == 0x20, i == 0 && s.Zero
	}
	return 0, 0, false, false
}
