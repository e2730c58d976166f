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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/television"
)

// snapshotLevel indicates the level of snapshot.
type snapshotLevel int

// List of valid snapshotLevel values.
const (
	levelReset snapshotLevel = iota
	levelFrame
	levelExecution
)

// Entry is a single state in the rewind history.
type Entry struct {
	level snapshotLevel
	Frame uint64
	State *hardware.State
}

func (e Entry) String() string {
	if e.level == levelExecution {
		return "c"
	}
	return fmt.Sprintf("%d", e.Frame)
}

// there is an overhead of two entries to facilitate appending etc.
const overhead = 2

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	nes   *hardware.NES
	prefs Preferences

	// circular array of snapshotted entries
	entries []*Entry
	start   int
	end     int

	// the position of the current entry and the position previous to that
	curr int
	prev int

	// pointer to the comparison point
	comparison       *Entry
	comparisonLocked bool

	timeline Timeline

	// a new frame has been published. resolved on the next call to Check()
	newFrame bool

	// the last call to Check() added a frame
	justAddedFrame bool
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The rewind system is reset before being returned.
func NewRewind(nes *hardware.NES, prefs Preferences) (*Rewind, error) {
	if err := prefs.validate(); err != nil {
		return nil, err
	}

	r := &Rewind{
		nes:     nes,
		prefs:   prefs,
		entries: make([]*Entry, prefs.MaxEntries+overhead),
	}
	r.nes.PPU.AddFrameTrigger(r)
	r.Reset()

	return r, nil
}

// SetPreferences changes the preferences of the rewind system. Changing the
// maximum number of entries resets the rewind system.
func (r *Rewind) SetPreferences(prefs Preferences) error {
	if err := prefs.validate(); err != nil {
		return err
	}

	resize := prefs.MaxEntries != r.prefs.MaxEntries
	r.prefs = prefs

	if resize {
		r.entries = make([]*Entry, prefs.MaxEntries+overhead)
		r.Reset()
	}

	return nil
}

// Preferences returns the current preferences of the rewind system.
func (r *Rewind) Preferences() Preferences {
	return r.prefs
}

// Remove the rewind system from the emulation.
func (r *Rewind) Remove() {
	r.nes.PPU.RemoveFrameTrigger(r)
}

func (r *Rewind) snapshot(level snapshotLevel) *Entry {
	return &Entry{
		level: level,
		Frame: r.nes.PPU.FrameNum,
		State: r.nes.Snapshot(),
	}
}

// Reset the rewind system. All entries are removed and the current state of
// the emulation becomes the first entry. Should be called whenever the
// emulation is powered on or a new cartridge is attached.
func (r *Rewind) Reset() {
	clear(r.entries)
	r.start = 0
	r.end = 0
	r.prev = 0
	r.curr = len(r.entries) - 1
	r.newFrame = false
	r.justAddedFrame = true
	r.timeline = newTimeline()

	r.append(r.snapshot(levelReset))

	// first comparison is to the snapshot of the reset machine
	r.comparison = r.entries[r.curr]
}

// NewFrame implements the television.FrameTrigger interface.
func (r *Rewind) NewFrame(_ *television.Frame) error {
	r.newFrame = true
	return nil
}

// Check should be called after every CPU instruction to check whether a new
// frame has been published since the last call.
func (r *Rewind) Check() {
	if !r.newFrame {
		r.justAddedFrame = false
		return
	}
	r.newFrame = false

	r.addTimelineEntry()

	if r.nes.PPU.FrameNum%uint64(r.prefs.Freq) != 0 {
		return
	}

	r.justAddedFrame = true
	r.trim()
	r.append(r.snapshot(levelFrame))
}

// ExecutionState takes a snapshot of the emulation's current state. It does
// nothing if the last call to Check() resulted in a snapshot being taken.
func (r *Rewind) ExecutionState() {
	if r.justAddedFrame {
		return
	}
	r.trim()
	r.append(r.snapshot(levelExecution))
}

func (r *Rewind) append(e *Entry) {
	// append at current position
	n := r.curr + 1
	if n >= len(r.entries) {
		n = 0
	}
	r.entries[n] = e

	r.prev = r.curr
	r.curr = n

	// next update point is recent update point plus one
	r.end = r.curr + 1
	if r.end >= len(r.entries) {
		r.end = 0
	}

	// push start index along
	if r.end == r.start {
		r.start++
		if r.start >= len(r.entries) {
			r.start = 0
		}
	}
}

// chop off the end entry if it is an execution entry
func (r *Rewind) trim() {
	if r.entries[r.curr] != nil && r.entries[r.curr].level == levelExecution {
		r.end = r.curr
		if r.curr == 0 {
			r.curr = len(r.entries) - 1
		} else {
			r.curr--
		}
	}
}

// index of the last entry
func (r *Rewind) last() int {
	e := r.end - 1
	if e < 0 {
		e += len(r.entries)
	}
	return e
}

// Frames of the current state of the rewind system.
type Frames struct {
	Start   uint64
	End     uint64
	Current uint64
}

func (f Frames) String() string {
	return fmt.Sprintf("%d -> %d [%d]", f.Start, f.End, f.Current)
}

// GetFrames returns the range of frames in the rewind history and the frame
// that is currently plumbed into the emulation.
func (r *Rewind) GetFrames() Frames {
	return Frames{
		Start:   r.entries[r.start].Frame,
		End:     r.entries[r.last()].Frame,
		Current: r.nes.PPU.FrameNum,
	}
}

// Len returns the number of entries in the rewind history.
func (r *Rewind) Len() int {
	n := r.end - r.start
	if n <= 0 {
		n += len(r.entries)
	}
	return n
}

func (r *Rewind) plumb(idx int) error {
	e := r.entries[idx]
	if e == nil {
		return curated.Errorf("rewind: no entry at index %d", idx)
	}
	if err := r.nes.Plumb(e.State); err != nil {
		return curated.Errorf("rewind: %v", err)
	}
	r.curr = idx
	r.newFrame = false
	return nil
}

// GotoLast sets the position to the last entry in the history.
func (r *Rewind) GotoLast() error {
	return r.plumb(r.last())
}

// GotoFrame searches the history for the frame number. If the precise frame
// cannot be found the nearest earlier frame is plumbed in. Returns the frame
// number of the plumbed entry.
func (r *Rewind) GotoFrame(frame uint64) (uint64, error) {
	s := r.start

	// requests earlier than the history plumb in the earliest entry
	if frame <= r.entries[s].Frame {
		return r.entries[s].Frame, r.plumb(s)
	}

	// unwrap the circular array and binary search. the result is the
	// latest entry that is not later than the requested frame
	lo, hi := 0, r.Len()-1
	for lo < hi {
		m := (lo + hi + 1) / 2
		idx := (s + m) % len(r.entries)
		if r.entries[idx].Frame <= frame {
			lo = m
		} else {
			hi = m - 1
		}
	}

	idx := (s + lo) % len(r.entries)

	// an execution entry shares the frame number of the preceding frame
	// entry. prefer the frame entry if the frame was requested exactly
	if r.entries[idx].level == levelExecution && r.entries[idx].Frame == frame && lo > 0 {
		p := (s + lo - 1) % len(r.entries)
		if r.entries[p].Frame == r.entries[idx].Frame {
			idx = p
		}
	}

	return r.entries[idx].Frame, r.plumb(idx)
}

// Rewind moves back the number of frames from the current frame. Negative
// values move forward. Returns the frame number of the plumbed entry.
func (r *Rewind) Rewind(frames int) (uint64, error) {
	current := int64(r.nes.PPU.FrameNum)
	target := max(current-int64(frames), 0)
	return r.GotoFrame(uint64(target))
}
