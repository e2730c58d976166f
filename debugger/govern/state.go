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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Paused is used by the debugger between commands. A continue check that
// returns Paused will halt the Run() loop in the same way as Ending but the
// caller can expect the emulation to be resumed.
const (
	Initialising State = iota
	Paused
	Stepping
	Rewinding
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Rewinding:
		return "Rewinding"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}
	return ""
}

// Halted returns true if the state should stop a run loop.
func (s State) Halted() bool {
	return s == Paused || s == Ending || s == Initialising
}
