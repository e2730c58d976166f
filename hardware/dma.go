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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gophernes/logger"
)

// the number of CPU cycles taken to copy a page of memory to OAM. one read
// and one write for each of the 256 bytes
const dmaTransferCycles = 512

// DMA is the state of the OAM DMA unit. While active the CPU is halted.
type DMA struct {
	Active bool
	Page   uint8

	// number of cycles performed since the transfer was requested
	Cycle int

	// number of idle cycles before the transfer starts
	Align int

	// the value most recently read by the transfer
	Data uint8
}

func (d DMA) String() string {
	if !d.Active {
		return "dma: inactive"
	}
	return fmt.Sprintf("dma: page %#02x cycle %d/%d", d.Page, d.Cycle, d.Align+dmaTransferCycles)
}

// DMA returns the state of the OAM DMA unit.
func (nes *NES) DMA() DMA {
	return nes.dma
}

// RequestOAMDMA implements the memory.DMAController interface. The transfer
// begins on the next CPU cycle and takes 513 cycles, or 514 cycles if the
// first cycle of the transfer is odd.
func (nes *NES) RequestOAMDMA(page uint8) {
	nes.dma = DMA{
		Active: true,
		Page:   page,
		Align:  1,
	}

	// Clock.CPUCycles is the number of the current cycle
	if (nes.Clock.CPUCycles+1)%2 == 1 {
		nes.dma.Align++
		logger.Logf(nes, "BUS", "OAM DMA from page %#02x on odd cycle", page)
	}
}

// perform one cycle of the DMA transfer
func (nes *NES) stepDMA() {
	d := &nes.dma

	if d.Cycle >= d.Align {
		i := d.Cycle - d.Align
		if i%2 == 0 {
			d.Data = nes.Mem.Read(uint16(d.Page)<<8 | uint16(i>>1))
		} else {
			nes.PPU.WriteOAMDMA(d.Data)
		}
	}

	d.Cycle++
	if d.Cycle >= d.Align+dmaTransferCycles {
		d.Active = false
	}
}
