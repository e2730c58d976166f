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
	"github.com/jetsetilly/gophernes/hardware/television"
)

// State is the complete state of the PPU, suitable for serialisation.
type State struct {
	Scanline int
	Dot      int
	FrameNum uint64
	OddFrame bool

	Ctrl    uint8
	Mask    uint8
	Status  uint8
	OAMAddr uint8

	V uint16
	T uint16
	X uint8
	W bool

	ReadBuffer     uint8
	IOLatch        uint8
	SuppressVBlank bool
	WarmUp         bool
	Warming        bool

	CIRAM   [4096]uint8
	Palette [32]uint8
	OAM     [256]uint8

	NTByte    uint8
	ATByte    uint8
	PTLo      uint8
	PTHi      uint8
	BGShiftLo uint16
	BGShiftHi uint16
	ATShiftLo uint16
	ATShiftHi uint16

	Sprites Sprites

	Frames    [2]television.Frame
	Drawing   int
	Published bool
}

// SaveState returns a copy of the PPU state.
func (p *PPU) SaveState() *State {
	return &State{
		Scanline:       p.Scanline,
		Dot:            p.Dot,
		FrameNum:       p.FrameNum,
		OddFrame:       p.oddFrame,
		Ctrl:           p.ctrl,
		Mask:           p.mask,
		Status:         p.status,
		OAMAddr:        p.oamAddr,
		V:              p.v,
		T:              p.t,
		X:              p.x,
		W:              p.w,
		ReadBuffer:     p.readBuffer,
		IOLatch:        p.ioLatch,
		SuppressVBlank: p.suppressVBlank,
		WarmUp:         p.warmUp,
		Warming:        p.warming,
		CIRAM:          p.ciram,
		Palette:        p.palette,
		OAM:            p.OAM,
		NTByte:         p.ntByte,
		ATByte:         p.atByte,
		PTLo:           p.ptLo,
		PTHi:           p.ptHi,
		BGShiftLo:      p.bgShiftLo,
		BGShiftHi:      p.bgShiftHi,
		ATShiftLo:      p.atShiftLo,
		ATShiftHi:      p.atShiftHi,
		Sprites:        p.sprites,
		Frames:         p.frames,
		Drawing:        p.drawing,
		Published:      p.published,
	}
}

// RestoreState sets the PPU to the state. The interrupt lines are not
// changed. They are part of the state of the console as a whole.
func (p *PPU) RestoreState(s *State) {
	p.Scanline = s.Scanline
	p.Dot = s.Dot
	p.FrameNum = s.FrameNum
	p.oddFrame = s.OddFrame
	p.ctrl = s.Ctrl
	p.mask = s.Mask
	p.status = s.Status
	p.oamAddr = s.OAMAddr
	p.v = s.V
	p.t = s.T
	p.x = s.X
	p.w = s.W
	p.readBuffer = s.ReadBuffer
	p.ioLatch = s.IOLatch
	p.suppressVBlank = s.SuppressVBlank
	p.warmUp = s.WarmUp
	p.warming = s.Warming
	p.ciram = s.CIRAM
	p.palette = s.Palette
	p.OAM = s.OAM
	p.ntByte = s.NTByte
	p.atByte = s.ATByte
	p.ptLo = s.PTLo
	p.ptHi = s.PTHi
	p.bgShiftLo = s.BGShiftLo
	p.bgShiftHi = s.BGShiftHi
	p.atShiftLo = s.ATShiftLo
	p.atShiftHi = s.ATShiftHi
	p.sprites = s.Sprites
	p.frames = s.Frames
	p.drawing = s.Drawing & 0x01
	p.published = s.Published
}
