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
	"github.com/jetsetilly/gophernes/curated"
)

// PushEvent pushes an Event onto the queue. The event will be applied at the
// next frame boundary. Safe to call from any goroutine. Will drop the event
// and return an error if the queue is full.
func (inp *Input) PushEvent(ev Event) error {
	if ev.Port < 0 || ev.Port >= NumPorts {
		return curated.Errorf(InvalidPort, ev.Port)
	}
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull)
	}
	return nil
}

func (inp *Input) handlePushed(frame uint64) error {
	for {
		select {
		case ev := <-inp.pushed:
			// pushed events are drained but ignored during playback
			if inp.playback != nil {
				continue
			}
			if err := inp.apply(ev); err != nil {
				return err
			}
			if inp.recorder != nil {
				err := inp.recorder.RecordEvent(TimedEvent{Frame: frame, Event: ev})
				if err != nil {
					return err
				}
			}
		default:
			return nil
		}
	}
}
