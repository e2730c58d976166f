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

package rewind_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/rewind"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/test/testrom"
)

func newNES(t *testing.T) *hardware.NES {
	t.Helper()
	cart, err := testrom.New().At(0x8000, 0xe8, 0x4c, 0x00, 0x80).Cartridge()
	test.DemandSuccess(t, err)
	nes, err := hardware.NewNES(cart, hardware.NewOptions())
	test.DemandSuccess(t, err)
	return nes
}

// run until the frame has been published, checking the rewind system after
// every instruction
func runTo(t *testing.T, nes *hardware.NES, r *rewind.Rewind, frame uint64) {
	t.Helper()
	err := nes.Run(func() (govern.State, error) {
		r.Check()
		if nes.PPU.FrameNum >= frame {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
}

func TestPreferences(t *testing.T) {
	nes := newNES(t)
	_, err := rewind.NewRewind(nes, rewind.Preferences{MaxEntries: 0, Freq: 1})
	test.ExpectFailure(t, err)
	_, err = rewind.NewRewind(nes, rewind.Preferences{MaxEntries: 10, Freq: 0})
	test.ExpectFailure(t, err)

	r, err := rewind.NewRewind(nes, rewind.NewPreferences())
	test.DemandSuccess(t, err)
	runTo(t, nes, r, 5)
	test.ExpectEquality(t, r.Len(), 6)

	// changing the frequency keeps the history
	test.ExpectSuccess(t, r.SetPreferences(rewind.Preferences{MaxEntries: 100, Freq: 2}))
	test.ExpectEquality(t, r.Len(), 6)
	test.ExpectEquality(t, r.Preferences().Freq, 2)

	// changing the number of entries resets the history
	test.ExpectSuccess(t, r.SetPreferences(rewind.Preferences{MaxEntries: 20, Freq: 2}))
	test.ExpectEquality(t, r.Len(), 1)

	test.ExpectFailure(t, r.SetPreferences(rewind.Preferences{MaxEntries: 20, Freq: 0}))
	test.ExpectEquality(t, r.Preferences().Freq, 2)
}

func TestRewind(t *testing.T) {
	nes := newNES(t)
	r, err := rewind.NewRewind(nes, rewind.Preferences{MaxEntries: 10, Freq: 1})
	test.DemandSuccess(t, err)

	runTo(t, nes, r, 20)
	want := nes.Clock
	wantCPU := nes.CPU.String()

	// the oldest entries have been forgotten
	test.ExpectEquality(t, r.Len(), 11)
	test.ExpectEquality(t, r.GetFrames().Start, uint64(10))
	test.ExpectEquality(t, r.GetFrames().End, uint64(20))

	fn, err := r.GotoFrame(15)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, uint64(15))
	test.ExpectEquality(t, nes.PPU.FrameNum, uint64(15))
	test.ExpectEquality(t, r.GetFrames().Current, uint64(15))

	// the emulation follows the same path after rewinding
	runTo(t, nes, r, 20)
	test.ExpectEquality(t, nes.Clock, want)
	test.ExpectEquality(t, nes.CPU.String(), wantCPU)

	// requests outside the history plumb in the nearest entry
	fn, err = r.GotoFrame(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, uint64(10))

	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, nes.PPU.FrameNum, uint64(20))

	fn, err = r.Rewind(5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, uint64(15))

	// continuing from the rewound position discards the later entries
	runTo(t, nes, r, 17)
	test.ExpectEquality(t, r.GetFrames().End, uint64(17))

	tl := r.GetTimeline()
	test.ExpectEquality(t, tl.FrameNum[len(tl.FrameNum)-1], uint64(17))
	test.ExpectEquality(t, len(tl.FrameNum), 17)
	test.ExpectEquality(t, len(tl.Joypads[0]), 17)
	test.ExpectEquality(t, tl.AvailableEnd, uint64(17))
}

func TestFrequency(t *testing.T) {
	nes := newNES(t)
	r, err := rewind.NewRewind(nes, rewind.Preferences{MaxEntries: 100, Freq: 4})
	test.DemandSuccess(t, err)

	runTo(t, nes, r, 10)

	// the reset entry and frames 4 and 8
	test.ExpectEquality(t, r.Len(), 3)

	fn, err := r.GotoFrame(7)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, uint64(4))
}

func TestExecutionState(t *testing.T) {
	nes := newNES(t)
	r, err := rewind.NewRewind(nes, rewind.NewPreferences())
	test.DemandSuccess(t, err)

	runTo(t, nes, r, 3)
	test.DemandSuccess(t, nes.StepInstruction(nil))
	r.Check()

	r.ExecutionState()
	want := nes.Clock
	test.ExpectEquality(t, r.Len(), 5)

	// a second execution state replaces the first
	test.DemandSuccess(t, nes.StepInstruction(nil))
	r.Check()
	r.ExecutionState()
	want = nes.Clock
	test.ExpectEquality(t, r.Len(), 5)

	test.DemandSuccess(t, nes.RunForCycles(1000))
	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, nes.Clock, want)

	// the frame entry is preferred over the execution entry
	fn, err := r.GotoFrame(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, uint64(3))
	test.ExpectInequality(t, nes.Clock, want)

	r.UpdateComparison()
	test.ExpectEquality(t, r.GetComparisonState().State.Frame, uint64(3))
	r.LockComparison(true)
	test.DemandSuccess(t, r.GotoLast())
	r.UpdateComparison()
	test.ExpectEquality(t, r.GetComparisonState().State.Frame, uint64(3))
	test.ExpectSuccess(t, r.GetComparisonState().Locked)
}
