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

package input_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/test"
)

func newInput() (*input.Input, [input.NumPorts]*controllers.Joypad) {
	pads := [input.NumPorts]*controllers.Joypad{controllers.NewJoypad(), controllers.NewJoypad()}
	return input.NewInput(pads), pads
}

func TestPushedEvents(t *testing.T) {
	inp, pads := newInput()

	err := inp.PushEvent(input.Event{Port: 1, Button: controllers.ButtonB, Pressed: true})
	test.ExpectSuccess(t, err)

	// nothing happens until the frame boundary
	test.ExpectFailure(t, pads[1].IsPressed(controllers.ButtonB))

	test.ExpectSuccess(t, inp.NewFrame(&television.Frame{Number: 1}))
	test.ExpectSuccess(t, pads[1].IsPressed(controllers.ButtonB))
	test.ExpectFailure(t, pads[0].IsPressed(controllers.ButtonB))

	err = inp.PushEvent(input.Event{Port: 2, Button: controllers.ButtonB})
	test.ExpectSuccess(t, curated.Is(err, input.InvalidPort))
}

func TestQueueFull(t *testing.T) {
	inp, _ := newInput()

	var err error
	for range 65 {
		err = inp.PushEvent(input.Event{Button: controllers.ButtonA, Pressed: true})
		if err != nil {
			break
		}
	}
	test.ExpectSuccess(t, curated.Is(err, input.QueueFull))

	// draining the queue makes room
	test.ExpectSuccess(t, inp.NewFrame(&television.Frame{}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Button: controllers.ButtonA}))
}

func TestRecordAndPlayback(t *testing.T) {
	inp, _ := newInput()
	rec := &input.Recording{}
	test.DemandSuccess(t, inp.AttachRecorder(rec))

	inp.PushEvent(input.Event{Port: 0, Button: controllers.ButtonStart, Pressed: true})
	inp.NewFrame(&television.Frame{Number: 3})
	inp.PushEvent(input.Event{Port: 0, Button: controllers.ButtonStart})
	inp.PushEvent(input.Event{Port: 1, Button: controllers.ButtonLeft, Pressed: true})
	inp.NewFrame(&television.Frame{Number: 7})

	test.DemandEquality(t, len(rec.Events), 3)
	test.ExpectEquality(t, rec.Events[0].Frame, uint64(3))
	test.ExpectEquality(t, rec.Events[2].Frame, uint64(7))

	// playback cannot be attached while a recorder is attached
	err := inp.AttachPlayback(rec)
	test.ExpectFailure(t, err)

	b := &bytes.Buffer{}
	test.DemandSuccess(t, rec.Write(b))
	test.ExpectSuccess(t, strings.Contains(b.String(), "7 1 LEFT PRESS"))

	pb, err := input.ReadRecording(b)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(pb.Events), 3)

	replay, pads := newInput()
	test.DemandSuccess(t, replay.AttachPlayback(pb))

	replay.NewFrame(&television.Frame{Number: 2})
	test.ExpectFailure(t, pads[0].IsPressed(controllers.ButtonStart))
	replay.NewFrame(&television.Frame{Number: 3})
	test.ExpectSuccess(t, pads[0].IsPressed(controllers.ButtonStart))

	// pushed events are ignored during playback
	replay.PushEvent(input.Event{Port: 0, Button: controllers.ButtonA, Pressed: true})
	replay.NewFrame(&television.Frame{Number: 7})
	test.ExpectFailure(t, pads[0].IsPressed(controllers.ButtonStart))
	test.ExpectFailure(t, pads[0].IsPressed(controllers.ButtonA))
	test.ExpectSuccess(t, pads[1].IsPressed(controllers.ButtonLeft))
	test.ExpectSuccess(t, pb.Done())
}

func TestReadRecordingErrors(t *testing.T) {
	_, err := input.ReadRecording(strings.NewReader("hello\n"))
	test.ExpectSuccess(t, curated.Is(err, input.InvalidRecording))

	_, err = input.ReadRecording(strings.NewReader("gophernes input recording\n1 0 TURBO PRESS\n"))
	test.ExpectSuccess(t, curated.Is(err, input.InvalidRecording))

	_, err = input.ReadRecording(strings.NewReader("gophernes input recording\n5 0 A PRESS\n4 0 A RELEASE\n"))
	test.ExpectSuccess(t, curated.Is(err, input.InvalidRecording))
}
