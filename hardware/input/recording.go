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

package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
)

// EventPlayback implementations feed events to the Input on request.
type EventPlayback interface {
	// GetPlayback returns the next event that is due on or before the
	// frame. The boolean return value is false if there is no such event.
	GetPlayback(frame uint64) (Event, bool, error)
}

// EventRecorder implementations receive every event applied to the joypads.
type EventRecorder interface {
	RecordEvent(TimedEvent) error
}

// AttachRecorder attaches an EventRecorder implementation. The recorder can be
// nil in order to remove the recorder.
func (inp *Input) AttachRecorder(r EventRecorder) error {
	if r != nil && inp.playback != nil {
		return curated.Errorf("input: attach recorder: emulator already has a playback attached")
	}
	inp.recorder = r
	return nil
}

// AttachPlayback attaches an EventPlayback implementation. The playback can be
// nil in order to remove the playback.
func (inp *Input) AttachPlayback(pb EventPlayback) error {
	if pb != nil && inp.recorder != nil {
		return curated.Errorf("input: attach playback: emulator already has a recorder attached")
	}
	inp.playback = pb
	return nil
}

func (inp *Input) handlePlayback(frame uint64) error {
	if inp.playback == nil {
		return nil
	}

	// there may be more than one event for the frame
	for {
		ev, ok, err := inp.playback.GetPlayback(frame)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := inp.apply(ev); err != nil {
			return err
		}
	}
}

// InvalidRecording is the pattern for errors returned by ReadRecording().
const InvalidRecording = "input: invalid recording: line %d: %v"

const recordingMagic = "gophernes input recording"

// Recording is a list of timed events. It implements both the EventRecorder
// and EventPlayback interfaces.
type Recording struct {
	Events []TimedEvent
	cursor int
}

// RecordEvent implements the EventRecorder interface.
func (rec *Recording) RecordEvent(ev TimedEvent) error {
	rec.Events = append(rec.Events, ev)
	return nil
}

// GetPlayback implements the EventPlayback interface.
func (rec *Recording) GetPlayback(frame uint64) (Event, bool, error) {
	if rec.cursor >= len(rec.Events) {
		return Event{}, false, nil
	}
	ev := rec.Events[rec.cursor]
	if ev.Frame > frame {
		return Event{}, false, nil
	}
	rec.cursor++
	return ev.Event, true, nil
}

// Rewind playback to the start of the recording.
func (rec *Recording) Rewind() {
	rec.cursor = 0
}

// Done returns true if every event has been played back.
func (rec *Recording) Done() bool {
	return rec.cursor >= len(rec.Events)
}

// Write recording to io.Writer. One line per event.
func (rec *Recording) Write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, recordingMagic); err != nil {
		return err
	}
	for _, ev := range rec.Events {
		action := "RELEASE"
		if ev.Pressed {
			action = "PRESS"
		}
		if _, err := fmt.Fprintf(w, "%d %d %s %s\n", ev.Frame, ev.Port, ev.Button, action); err != nil {
			return err
		}
	}
	return nil
}

// ReadRecording creates a new Recording from data written by the Write()
// function.
func ReadRecording(r io.Reader) (*Recording, error) {
	rec := &Recording{}
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != recordingMagic {
		return nil, curated.Errorf(InvalidRecording, 1, "not a recording")
	}

	line := 1
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}

		var ev TimedEvent
		var button, action string
		_, err := fmt.Sscanf(s, "%d %d %s %s", &ev.Frame, &ev.Port, &button, &action)
		if err != nil {
			return nil, curated.Errorf(InvalidRecording, line, err)
		}
		if ev.Port < 0 || ev.Port >= NumPorts {
			return nil, curated.Errorf(InvalidRecording, line, fmt.Sprintf("port %d", ev.Port))
		}
		ev.Button, err = controllers.ParseButton(button)
		if err != nil {
			return nil, curated.Errorf(InvalidRecording, line, err)
		}
		switch action {
		case "PRESS":
			ev.Pressed = true
		case "RELEASE":
		default:
			return nil, curated.Errorf(InvalidRecording, line, fmt.Sprintf("action %s", action))
		}

		if n := len(rec.Events); n > 0 && rec.Events[n-1].Frame > ev.Frame {
			return nil, curated.Errorf(InvalidRecording, line, "events out of order")
		}

		rec.Events = append(rec.Events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rec, nil
}
