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

package rewind

import (
	"github.com/jetsetilly/gophernes/hardware/input"
)

// Timeline provides a summary of recent frames. It is updated on every frame
// whether or not a snapshot is taken.
//
// Useful for presenting the range of frames that are available in the
// rewind history.
type Timeline struct {
	FrameNum []uint64

	// state of the joypad buttons at the end of the frame
	Joypads [input.NumPorts][]uint8

	// the earliest and latest frames that are available in the rewind
	// history. the earliest information in the other fields may be
	// different
	AvailableStart uint64
	AvailableEnd   uint64
}

const timelineLength = 1000

func newTimeline() Timeline {
	return Timeline{
		FrameNum: make([]uint64, 0, timelineLength),
	}
}

func (r *Rewind) addTimelineEntry() {
	fn := r.nes.PPU.FrameNum

	// after a rewind the timeline is spliced at the new frame
	for i := range r.timeline.FrameNum {
		if r.timeline.FrameNum[i] >= fn {
			r.timeline.FrameNum = r.timeline.FrameNum[:i]
			for p := range r.timeline.Joypads {
				r.timeline.Joypads[p] = r.timeline.Joypads[p][:i]
			}
			break // for loop
		}
	}

	r.timeline.FrameNum = append(r.timeline.FrameNum, fn)
	for p := range r.timeline.Joypads {
		r.timeline.Joypads[p] = append(r.timeline.Joypads[p], r.nes.Joypads[p].Buttons())
	}

	if len(r.timeline.FrameNum) > timelineLength {
		r.timeline.FrameNum = r.timeline.FrameNum[1:]
		for p := range r.timeline.Joypads {
			r.timeline.Joypads[p] = r.timeline.Joypads[p][1:]
		}
	}
}

// GetTimeline returns a copy of the current timeline.
func (r *Rewind) GetTimeline() Timeline {
	tl := Timeline{
		FrameNum:       append([]uint64(nil), r.timeline.FrameNum...),
		AvailableStart: r.entries[r.start].Frame,
		AvailableEnd:   r.entries[r.last()].Frame,
	}
	for p := range tl.Joypads {
		tl.Joypads[p] = append([]uint8(nil), r.timeline.Joypads[p]...)
	}
	return tl
}
