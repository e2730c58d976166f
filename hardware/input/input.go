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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/hardware/television"
)

// List of error patterns returned by the input package.
const (
	InvalidPort = "input: invalid port: %d"
	QueueFull   = "input: pushed event queue is full: input dropped"
)

// NumPorts is the number of joypad ports on the NES.
const NumPorts = 2

// Event is a change of state of a single button on a single joypad.
type Event struct {
	Port    int
	Button  controllers.Button
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("port %d: press %s", ev.Port, ev.Button)
	}
	return fmt.Sprintf("port %d: release %s", ev.Port, ev.Button)
}

// TimedEvent is an Event along with the frame on which it was applied.
type TimedEvent struct {
	Frame uint64
	Event
}

// Input handles all forms of input into the NES.
type Input struct {
	pads [NumPorts]*controllers.Joypad

	playback EventPlayback
	recorder EventRecorder

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(pads [NumPorts]*controllers.Joypad) *Input {
	return &Input{
		pads:   pads,
		pushed: make(chan Event, 64),
	}
}

// Joypad returns the joypad attached to the port. Returns nil if the port is
// invalid.
func (inp *Input) Joypad(port int) *controllers.Joypad {
	if port < 0 || port >= NumPorts {
		return nil
	}
	return inp.pads[port]
}

// apply event to joypad
func (inp *Input) apply(ev Event) error {
	pad := inp.Joypad(ev.Port)
	if pad == nil {
		return curated.Errorf(InvalidPort, ev.Port)
	}
	if ev.Pressed {
		pad.Press(ev.Button)
	} else {
		pad.Release(ev.Button)
	}
	return nil
}

// NewFrame implements the television.FrameTrigger interface. All events that
// have been pushed since the last frame, or which are due from the playback,
// are applied.
func (inp *Input) NewFrame(frame *television.Frame) error {
	if err := inp.handlePushed(frame.Number); err != nil {
		return err
	}
	return inp.handlePlayback(frame.Number)
}
