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

// render performs the memory fetches and the pixel output for the current
// dot of a visible or pre-render scanline
func (p *PPU) render(visible, preRender bool) {
	dot := p.Dot

	if p.Rendering() {
		// the shift registers are reloaded at dots 9, 17 ... 257 and at 329
		// and 337 with the tile fetched over the previous eight dots
		if (dot >= 2 && dot <= 257) || (dot >= 322 && dot <= 337) {
			p.shiftBackground()
			if (dot-1)%8 == 0 {
				p.loadBackground()
			}
		}

		// tile fetches begin at dots 1, 9 ... 249 and at 321 and 329
		if (dot >= 1 && dot <= 256) || (dot >= 321 && dot <= 336) {
			switch (dot - 1) % 8 {
			case 0:
				p.ntByte = p.vramRead(0x2000 | p.v&0x0fff)
			case 2:
				p.fetchAttribute()
			case 4:
				p.ptLo = p.vramRead(p.patternAddress())
			case 6:
				p.ptHi = p.vramRead(p.patternAddress() + 8)
			case 7:
				p.incrementX()
			}
		}

		switch dot {
		case 256:
			p.incrementY()
		case 257:
			p.copyX()
		case 338, 340:
			// unused nametable fetches
			p.ntByte = p.vramRead(0x2000 | p.v&0x0fff)
		}

		if preRender && dot >= 280 && dot <= 304 {
			p.copyY()
		}

		if dot >= 257 && dot <= 320 {
			p.oamAddr = 0
		}
	}

	if dot == 257 {
		if visible && p.Rendering() {
			p.evaluateSprites()
		} else {
			p.sprites = Sprites{}
		}
	}

	if visible && dot >= 1 && dot <= 256 {
		p.pixel(dot - 1)
	}
}

func (p *PPU) shiftBackground() {
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.atShiftLo <<= 1
	p.atShiftHi <<= 1
}

// load the most recently fetched tile into the low byte of the shift
// registers
func (p *PPU) loadBackground() {
	p.bgShiftLo = p.bgShiftLo&0xff00 | uint16(p.ptLo)
	p.bgShiftHi = p.bgShiftHi&0xff00 | uint16(p.ptHi)

	p.atShiftLo &= 0xff00
	if p.atByte&0x01 == 0x01 {
		p.atShiftLo |= 0x00ff
	}
	p.atShiftHi &= 0xff00
	if p.atByte&0x02 == 0x02 {
		p.atShiftHi |= 0x00ff
	}
}

func (p *PPU) fetchAttribute() {
	at := p.vramRead(0x23c0 | p.v&0x0c00 | (p.v>>4)&0x38 | (p.v>>2)&0x07)

	// select the quadrant of the attribute byte using bit 1 of coarse Y and
	// bit 1 of coarse X
	if p.v&0x0040 == 0x0040 {
		at >>= 4
	}
	if p.v&0x0002 == 0x0002 {
		at >>= 2
	}
	p.atByte = at & 0x03
}

func (p *PPU) patternAddress() uint16 {
	return uint16(p.ctrl&ctrlBackgroundTable)<<8 | uint16(p.ntByte)<<4 | (p.v>>12)&0x07
}

// pixel composes the background and sprite pixel for the x coordinate of the
// current scanline and writes it to the frame being drawn
func (p *PPU) pixel(x int) {
	var bgPixel, bgPalette uint8
	if p.mask&maskBackground == maskBackground && (x >= 8 || p.mask&maskBackgroundLeft == maskBackgroundLeft) {
		mux := uint16(0x8000) >> p.x
		if p.bgShiftLo&mux != 0 {
			bgPixel |= 0x01
		}
		if p.bgShiftHi&mux != 0 {
			bgPixel |= 0x02
		}
		if p.atShiftLo&mux != 0 {
			bgPalette |= 0x01
		}
		if p.atShiftHi&mux != 0 {
			bgPalette |= 0x02
		}
	}

	var spPixel, spPalette uint8
	var behind, zero bool
	if p.mask&maskSprites == maskSprites && (x >= 8 || p.mask&maskSpritesLeft == maskSpritesLeft) {
		spPixel, spPalette, behind, zero = p.sprites.pixel(x)
	}

	var idx uint16
	switch {
	case bgPixel == 0 && spPixel == 0:
		idx = 0
	case bgPixel == 0:
		idx = 0x10 | uint16(spPalette)<<2 | uint16(spPixel)
	case spPixel == 0:
		idx = uint16(bgPalette)<<2 | uint16(bgPixel)
	default:
		if zero && x != 255 {
			p.status |= statusSprite0
		}
		if behind {
			idx = uint16(bgPalette)<<2 | uint16(bgPixel)
		} else {
			idx = 0x10 | uint16(spPalette)<<2 | uint16(spPixel)
		}
	}

	colour := p.readPalette(0x3f00 | idx)

	// with rendering disabled and v pointing into palette RAM the backdrop
	// colour is replaced by the colour at v
	if !p.Rendering() && p.v&0x3f00 == 0x3f00 {
		colour = p.readPalette(p.v)
	}

	p.frames[p.drawing].SetPixel(x, p.Scanline, uint16(colour)|uint16(p.mask&maskEmphasis)<<1)
}
