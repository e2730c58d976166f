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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit, the most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// repeat of the input line
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information from a command
	StyleFeedback

	// disassembly of the most recent instruction
	StyleCPUStep

	// state of the PPU or other video related information
	StyleVideoStep

	// detailed information about the emulation
	StyleInstrument

	// an error has occurred
	StyleError
)

func (sty Style) String() string {
	switch sty {
	case StyleEcho:
		return "echo"
	case StyleHelp:
		return "help"
	case StyleFeedback:
		return "feedback"
	case StyleCPUStep:
		return "cpu step"
	case StyleVideoStep:
		return "video step"
	case StyleInstrument:
		return "instrument"
	case StyleError:
		return "error"
	}
	return "unknown style"
}
