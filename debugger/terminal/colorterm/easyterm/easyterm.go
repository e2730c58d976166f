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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals. usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu       sync.Mutex
	geometry TermGeometry
}

// Initialise the fields in the Terminal struct.
func (et *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	_ = et.UpdateGeometry()

	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (et *Terminal) CleanUp() {
	et.CanonicalMode()
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
}

// TermPrint writes the string to the output file.
func (et *Terminal) TermPrint(s string) {
	et.output.WriteString(s)
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *Terminal) UpdateGeometry() error {
	cols, rows, err := term.GetSize(int(et.output.Fd()))
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.mu.Lock()
	defer et.mu.Unlock()
	et.geometry.Cols = cols
	et.geometry.Rows = rows

	return nil
}

// Geometry returns the most recent terminal dimensions.
func (et *Terminal) Geometry() TermGeometry {
	et.mu.Lock()
	defer et.mu.Unlock()
	return et.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *Terminal) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	return termios.Tcflush(et.output.Fd(), termios.TCOFLUSH)
}
