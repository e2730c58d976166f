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

// Tick advances the emulation by one CPU cycle. The PPU is advanced by the
// number of dots due for the cycle first and then the CPU, or the DMA unit
// if a transfer is in progress, performs one cycle.
//
// An error is returned only if a frame listener fails. The tick is always
// completed.
func (nes *NES) Tick() error {
	var err error

	for range nes.Clock.Dots(nes.Ratio) {
		if e := nes.PPU.Tick(); e != nil && err == nil {
			err = e
		}
	}

	if nes.dma.Active {
		nes.stepDMA()
	} else {
		nes.CPU.Cycle()
	}

	return err
}

// StepInstruction ticks the emulation until the CPU completes the current
// instruction or interrupt sequence. If the instruction triggers an OAM DMA
// then the transfer is completed before returning. The callback function is
// called after every tick and can be nil. An error from the callback ends the
// step early.
//
// A halted CPU will perform a single tick.
func (nes *NES) StepInstruction(callback func() error) error {
	executed := false

	for {
		cpuCycle := !nes.dma.Active

		if err := nes.Tick(); err != nil {
			return err
		}

		if callback != nil {
			if err := callback(); err != nil {
				return err
			}
		}

		executed = executed || cpuCycle

		if executed {
			if nes.CPU.Killed {
				return nil
			}
			if !nes.dma.Active && nes.CPU.AtBoundary() {
				return nil
			}
		}
	}
}

// StepFrame ticks the emulation until the next frame is published. The
// emulation will likely be left part way through an instruction.
func (nes *NES) StepFrame() error {
	frameNum := nes.PPU.FrameNum
	for frameNum == nes.PPU.FrameNum {
		if err := nes.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// RunForCycles ticks the emulation the specified number of times.
func (nes *NES) RunForCycles(cycles uint64) error {
	for range cycles {
		if err := nes.Tick(); err != nil {
			return err
		}
	}
	return nil
}
