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
	"github.com/jetsetilly/gophernes/debugger/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction. The emulation will run until
// the check returns a state that halts the emulation.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for !state.Halted() {
		if err := nes.StepInstruction(nil); err != nil {
			return err
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for regression tests and performance measurement. The
// emulation stops on the instruction boundary following the publication of
// the final frame.
//
// The continueCheck function can be nil.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame uint64) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := nes.PPU.FrameNum + uint64(numFrames)

	state := govern.Running
	for nes.PPU.FrameNum < targetFrame && !state.Halted() {
		if err := nes.StepInstruction(nil); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(nes.PPU.FrameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
