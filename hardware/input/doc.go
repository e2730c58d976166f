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

// Package input coordinates the different types of input into the NES. The
// types of input handled by the package are:
//
// 1) Pushed events, arriving from a different goroutine. For example, the
// keyboard handler of the SDL window or the terminal of the debugger
// 2) Playback of a previously recorded sequence of events
//
// In both cases events are applied to the joypads only at a frame boundary.
// The Input type implements the television.FrameTrigger interface for this
// purpose. Because of this, input is deterministic: the same sequence of
// events will always be seen by the emulated program on the same frame.
//
// Applied events are forwarded to an attached EventRecorder. The Recording
// type implements both the EventRecorder and EventPlayback interfaces.
//
// It is not possible for an emulation to be recording and playing back at
// the same time.
package input
