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
	"github.com/jetsetilly/gophernes/logger"
)

// bits of PPUCTRL
const (
	ctrlIncrement       = 0x04
	ctrlSpriteTable     = 0x08
	ctrlBackgroundTable = 0x10
	ctrlSpriteSize      = 0x20
	ctrlNMI             = 0x80
)

// bits of PPUMASK
const (
	maskGreyscale      = 0x01
	maskBackgroundLeft = 0x02
	maskSpritesLeft    = 0x04
	maskBackground     = 0x08
	maskSprites        = 0x10
	maskEmphasis       = 0xe0
)

// bits of PPUSTATUS
const (
	statusOverflow = 0x20
	statusSprite0  = 0x40
	statusVBlank   = 0x80
)

// register numbers
const (
	regCtrl = iota
	regMask
	regStatus
	regOAMAddr
	regOAMData
	regScroll
	regAddr
	regData
)

// ReadRegister implements the memory.PPUBus interface.
func (p *PPU) ReadRegister(register uint16) uint8 {
	switch register & 0x07 {
	case regStatus:
		if p.Scanline == p.spec.ScanlineVBlank && p.Dot == 1 {
			p.suppressVBlank = true
		}
		p.ioLatch = p.status&0xe0 | p.ioLatch&0x1f
		p.status &^= statusVBlank
		p.w = false
		p.updateNMI()
	case regOAMData:
		p.ioLatch = p.readOAM()
	case regData:
		p.ioLatch = p.readData()
	}
	return p.ioLatch
}

// PeekRegister implements the memory.PPUBus interface. There are no side
// effects.
func (p *PPU) PeekRegister(register uint16) uint8 {
	switch register & 0x07 {
	case regStatus:
		return p.status&0xe0 | p.ioLatch&0x1f
	case regOAMData:
		return p.readOAM()
	case regData:
		addr := p.v & 0x3fff
		if addr >= 0x3f00 {
			return p.ioLatch&0xc0 | p.readPalette(addr)
		}
		return p.readBuffer
	}
	return p.ioLatch
}

// WriteRegister implements the memory.PPUBus interface.
func (p *PPU) WriteRegister(register uint16, data uint8) {
	p.ioLatch = data

	register &= 0x07

	if p.warming {
		switch register {
		case regCtrl, regMask, regScroll, regAddr:
			logger.Logf(p.env, "PPU", "write to register %d ignored during warm up", register)
			return
		}
	}

	switch register {
	case regCtrl:
		p.ctrl = data
		p.t = p.t&^0x0c00 | uint16(data&0x03)<<10
		p.updateNMI()
	case regMask:
		p.mask = data
	case regOAMAddr:
		p.oamAddr = data
	case regOAMData:
		p.writeOAM(data)
	case regScroll:
		if !p.w {
			p.t = p.t&^0x001f | uint16(data)>>3
			p.x = data & 0x07
		} else {
			p.t = p.t&^0x73e0 | uint16(data&0x07)<<12 | uint16(data&0xf8)<<2
		}
		p.w = !p.w
	case regAddr:
		if !p.w {
			p.t = p.t&0x00ff | uint16(data&0x3f)<<8
		} else {
			p.t = p.t&0xff00 | uint16(data)
			p.v = p.t
		}
		p.w = !p.w
	case regData:
		p.vramWrite(p.v, data)
		p.incrementV()
	}
}

// rendering is enabled and the PPU is on a scanline that fetches from VRAM
func (p *PPU) renderingActive() bool {
	return p.Rendering() && (p.Scanline < 240 || p.Scanline == p.spec.ScanlinePreRender)
}

func (p *PPU) readOAM() uint8 {
	v := p.OAM[p.oamAddr]
	// unimplemented bits of the attribute byte
	if p.oamAddr&0x03 == 0x02 {
		v &= 0xe3
	}
	return v
}

func (p *PPU) writeOAM(data uint8) {
	// writes during rendering do not reach OAM but do bump the high bits of
	// the address
	if p.renderingActive() {
		p.oamAddr += 4
		return
	}
	p.OAM[p.oamAddr] = data
	p.oamAddr++
}

// WriteOAMDMA writes a byte to OAM as part of OAM DMA.
func (p *PPU) WriteOAMDMA(data uint8) {
	p.WriteRegister(regOAMData, data)
}

func (p *PPU) readData() uint8 {
	addr := p.v & 0x3fff

	var v uint8
	if addr >= 0x3f00 {
		// palette reads are not buffered but the buffer is filled with the
		// nametable byte underneath the palette
		v = p.ioLatch&0xc0 | p.readPalette(addr)
		p.readBuffer = p.vramRead(addr - 0x1000)
	} else {
		v = p.readBuffer
		p.readBuffer = p.vramRead(addr)
	}

	p.incrementV()
	return v
}

// increment v after an access through PPUDATA. during rendering the access
// causes both a coarse X and a Y increment
func (p *PPU) incrementV() {
	if p.renderingActive() {
		p.incrementX()
		p.incrementY()
		return
	}
	if p.ctrl&ctrlIncrement == ctrlIncrement {
		p.v += 32
	} else {
		p.v++
	}
	p.v &= 0x7fff
}

func (p *PPU) incrementX() {
	if p.v&0x001f == 31 {
		p.v &^= 0x001f
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}

	p.v &^= 0x7000
	y := (p.v & 0x03e0) >> 5
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = p.v&^0x03e0 | y<<5
}

func (p *PPU) copyX() {
	p.v = p.v&^0x041f | p.t&0x041f
}

func (p *PPU) copyY() {
	p.v = p.v&^0x7be0 | p.t&0x7be0
}
