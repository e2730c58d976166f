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

// Mode indicates the broad condition of the emulation.
type Mode int

func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "Play"
	case ModeDebugger:
		return "Debugger"
	case ModeScript:
		return "Script"
	case ModeHeadless:
		return "Headless"
	case ModePerformance:
		return "Performance"
	case ModeRegress:
		return "Regress"
	case ModeInfo:
		return "Info"
	}
	return ""
}

// List of defined modes.
const (
	ModeNone Mode = iota
	ModePlay
	ModeDebugger
	ModeScript
	ModeHeadless
	ModePerformance
	ModeRegress
	ModeInfo
)
