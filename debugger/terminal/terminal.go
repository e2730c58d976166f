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

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input with leading and trailing
	// space removed. An io.EOF error means there will be no more input.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive() should return true for implementations that require user
	// interaction. Instances that don't expect user intervention should return
	// false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
