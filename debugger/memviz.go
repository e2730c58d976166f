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

package debugger

import (
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/interrupts"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
)

// the PPU state without the memory and frame buffers, which are too large
// to be usefully visualised
type memvizPPU struct {
	Scanline int
	Dot      int
	FrameNum uint64
	OddFrame bool
	Ctrl     uint8
	Mask     uint8
	Status   uint8
	OAMAddr  uint8
	V        uint16
	T        uint16
	X        uint8
	W        bool
}

type memvizNES struct {
	CPU     cpu.State
	PPU     memvizPPU
	DMA     hardware.DMA
	Clock   clocks.Counter
	Lines   interrupts.Lines
	Joypads [2]controllers.State
}

func (dbg *Debugger) memvizState() *memvizNES {
	s := dbg.nes.Snapshot()
	return &memvizNES{
		CPU: s.CPU,
		PPU: memvizPPU{
			Scanline: s.PPU.Scanline,
			Dot:      s.PPU.Dot,
			FrameNum: s.PPU.FrameNum,
			OddFrame: s.PPU.OddFrame,
			Ctrl:     s.PPU.Ctrl,
			Mask:     s.PPU.Mask,
			Status:   s.PPU.Status,
			OAMAddr:  s.PPU.OAMAddr,
			V:        s.PPU.V,
			T:        s.PPU.T,
			X:        s.PPU.X,
			W:        s.PPU.W,
		},
		DMA:     s.DMA,
		Clock:   s.Clock,
		Lines:   s.Lines,
		Joypads: s.Joypads,
	}
}

func (dbg *Debugger) cmdMemviz(tk *tokens) error {
	fn, err := dbg.filename(tk)
	if err != nil {
		return err
	}

	s := dbg.memvizState()

	var target any
	option, _ := tk.get()
	switch strings.ToUpper(option) {
	case "", "CPU":
		target = &s.CPU
	case "PPU":
		target = &s.PPU
	case "DMA":
		target = &s.DMA
	case "ALL":
		target = s
	default:
		return curated.Errorf(UnknownOption, option)
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	memviz.Map(f, target)
	if err := f.Close(); err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "memviz written: %s", fn)
	return nil
}
