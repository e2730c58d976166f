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
	"fmt"

	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/interrupts"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/hardware/television/specification"
	"github.com/jetsetilly/gophernes/logger"
)

// Cartridge is the view of the cartridge from the PPU. The pattern tables are
// in the cartridge and the cartridge decides how the nametables are mirrored.
type Cartridge interface {
	AccessCHR(addr uint16) uint8
	AccessCHRVolatile(addr uint16, data uint8)
	Mirroring() mapper.Mirroring
}

// PPU implements the 2C02 (NTSC) and 2C07 (PAL) picture processing units.
type PPU struct {
	env   *environment.Environment
	spec  specification.Spec
	cart  Cartridge
	lines *interrupts.Lines

	// position of the next dot to be processed
	Scanline int
	Dot      int

	// number of frames completed since power on
	FrameNum uint64
	oddFrame bool

	// registers written by the CPU
	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	// loopy registers
	v uint16
	t uint16
	x uint8
	w bool

	readBuffer uint8

	// the value most recently driven on the data bus between the CPU and the
	// PPU. reads of write-only registers return this value
	ioLatch uint8

	// reading PPUSTATUS one dot before vblank is set prevents the flag being
	// set and the NMI being raised for that frame
	suppressVBlank bool

	// writes to some registers are ignored until the end of the first vblank
	// after power on or reset
	warmUp  bool
	warming bool

	ciram   [4096]uint8
	palette [32]uint8
	OAM     [256]uint8

	// background pipeline
	ntByte    uint8
	atByte    uint8
	ptLo      uint8
	ptHi      uint8
	bgShiftLo uint16
	bgShiftHi uint16
	atShiftLo uint16
	atShiftHi uint16

	// sprites for the scanline being drawn
	sprites Sprites

	// the frame being drawn and the most recently published frame
	frames    [2]television.Frame
	drawing   int
	published bool

	frameTriggers []television.FrameTrigger
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// PPU must be powered on before use.
func NewPPU(env *environment.Environment, spec specification.Spec, cart Cartridge, lines *interrupts.Lines) *PPU {
	if lines == nil {
		lines = &interrupts.Lines{}
	}
	return &PPU{
		env:   env,
		spec:  spec,
		cart:  cart,
		lines: lines,
	}
}

// Plumb a new cartridge and interrupt lines into the PPU.
func (p *PPU) Plumb(cart Cartridge, lines *interrupts.Lines) {
	p.cart = cart
	if lines != nil {
		p.lines = lines
	}
}

// Spec returns the specification used by the PPU.
func (p *PPU) Spec() specification.Spec {
	return p.spec
}

func (p *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d v=%04x t=%04x x=%d w=%v ctrl=%02x mask=%02x status=%02x",
		p.FrameNum, p.Scanline, p.Dot, p.v, p.t, p.x, p.w, p.ctrl, p.mask, p.status)
}

// values in palette RAM after power on
var powerOnPalette = [32]uint8{
	0x09, 0x01, 0x00, 0x01, 0x00, 0x02, 0x02, 0x0d,
	0x08, 0x10, 0x08, 0x24, 0x00, 0x00, 0x04, 0x2c,
	0x09, 0x01, 0x34, 0x03, 0x00, 0x04, 0x00, 0x14,
	0x08, 0x3a, 0x00, 0x02, 0x00, 0x20, 0x2c, 0x08,
}

// PowerOn sets the PPU to its power on state. If warmUp is true then writes
// to PPUCTRL, PPUMASK, PPUSCROLL and PPUADDR are ignored until the end of the
// first vblank.
func (p *PPU) PowerOn(warmUp bool) {
	p.warmUp = warmUp
	p.Scanline = 0
	p.Dot = 0
	p.FrameNum = 0
	p.status = 0
	p.oamAddr = 0
	p.v = 0
	p.palette = powerOnPalette

	if p.env != nil && p.env.RandomState {
		p.env.Random.Fill(p.ciram[:])
		p.env.Random.Fill(p.OAM[:])
	} else {
		clear(p.ciram[:])
		clear(p.OAM[:])
	}

	clear(p.frames[0].Pixels[:])
	clear(p.frames[1].Pixels[:])
	p.frames[0].Number = 0
	p.frames[1].Number = 0
	p.drawing = 0
	p.published = false

	p.Reset()
}

// Reset the PPU. The position in the frame returns to the start of scanline
// zero. The frame number, the contents of VRAM and OAM, OAMADDR, and the v
// register are unchanged.
func (p *PPU) Reset() {
	p.Scanline = 0
	p.Dot = 0
	p.ctrl = 0
	p.mask = 0
	p.t = 0
	p.x = 0
	p.w = false
	p.readBuffer = 0
	p.oddFrame = false
	p.suppressVBlank = false
	p.warming = p.warmUp
	p.sprites = Sprites{}
	p.updateNMI()
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (p *PPU) AddFrameTrigger(ft television.FrameTrigger) {
	p.frameTriggers = append(p.frameTriggers, ft)
}

// RemoveFrameTrigger removes a previously registered FrameTrigger.
func (p *PPU) RemoveFrameTrigger(ft television.FrameTrigger) {
	for i := range p.frameTriggers {
		if p.frameTriggers[i] == ft {
			p.frameTriggers = append(p.frameTriggers[:i], p.frameTriggers[i+1:]...)
			return
		}
	}
}

// LastFrame returns the most recently published frame. Returns nil if no
// frame has been published since power on. The frame is valid until the next
// frame is published.
func (p *PPU) LastFrame() *television.Frame {
	if !p.published {
		return nil
	}
	return &p.frames[p.drawing^1]
}

// Rendering returns true if either background or sprite rendering is enabled.
func (p *PPU) Rendering() bool {
	return p.mask&(maskBackground|maskSprites) != 0
}

// InVBlank returns true if the vblank flag is set.
func (p *PPU) InVBlank() bool {
	return p.status&statusVBlank == statusVBlank
}

func (p *PPU) updateNMI() {
	p.lines.SetNMI(p.status&statusVBlank == statusVBlank && p.ctrl&ctrlNMI == ctrlNMI)
}

// Tick advances the PPU by one dot. An error is returned only if a
// FrameTrigger fails.
func (p *PPU) Tick() error {
	if p.Scanline < 0 || p.Scanline >= p.spec.ScanlinesTotal || p.Dot < 0 || p.Dot >= specification.DotsPerScanline {
		panic(fmt.Sprintf("ppu: position off the grid (scanline %d dot %d)", p.Scanline, p.Dot))
	}

	visible := p.Scanline < specification.VisibleScanlines
	preRender := p.Scanline == p.spec.ScanlinePreRender

	if visible || preRender {
		p.render(visible, preRender)
	}

	if p.Dot == 1 {
		switch p.Scanline {
		case p.spec.ScanlineVBlank:
			if !p.suppressVBlank {
				p.status |= statusVBlank
				p.updateNMI()
			}
			p.suppressVBlank = false
		case p.spec.ScanlinePreRender:
			p.status &^= statusVBlank | statusSprite0 | statusOverflow
			p.updateNMI()
			if p.warming {
				p.warming = false
				logger.Log(p.env, "PPU", "warm up complete")
			}
		}
	}

	return p.advance(preRender)
}

func (p *PPU) advance(preRender bool) error {
	p.Dot++

	if preRender && p.Dot == specification.DotsPerScanline-1 {
		if p.oddFrame && p.spec.OddFrameSkip && p.Rendering() {
			p.Dot++
		}
	}

	if p.Dot < specification.DotsPerScanline {
		return nil
	}

	p.Dot = 0
	p.Scanline++
	if p.Scanline < p.spec.ScanlinesTotal {
		return nil
	}

	p.Scanline = 0
	p.oddFrame = !p.oddFrame
	return p.publish()
}

// publish the frame that has just been completed and begin drawing into the
// other buffer
func (p *PPU) publish() error {
	p.FrameNum++

	f := &p.frames[p.drawing]
	f.Number = p.FrameNum
	p.drawing ^= 1
	p.published = true

	var err error
	for _, ft := range p.frameTriggers {
		if e := ft.NewFrame(f); e != nil && err == nil {
			err = e
			logger.Logf(p.env, "PPU", "frame trigger: %v", e)
		}
	}
	return err
}
