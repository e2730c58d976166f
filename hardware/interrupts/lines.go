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

package interrupts

import (
	"fmt"
	"strings"
)

// Source identifies a device asserting the IRQ line.
type Source uint8

// List of IRQ sources.
const (
	APUFrame Source = 1 << iota
	APUDMC
	Cartridge
	External
)

// Lines is the shared state of the interrupt lines.
type Lines struct {
	// current level of the NMI line as driven by the PPU
	NMILevel bool

	// an NMI edge has been seen and has not yet been serviced
	NMILatched bool

	// the sources currently asserting the IRQ line
	IRQSources Source
}

func (l Lines) String() string {
	s := strings.Builder{}
	if l.NMILatched {
		s.WriteString("NMI*")
	} else if l.NMILevel {
		s.WriteString("NMI")
	} else {
		s.WriteString("nmi")
	}
	if l.IRQSources != 0 {
		s.WriteString(fmt.Sprintf(" IRQ(%04b)", l.IRQSources))
	} else {
		s.WriteString(" irq")
	}
	return s.String()
}

// Reset clears all lines.
func (l *Lines) Reset() {
	*l = Lines{}
}

// SetNMI sets the level of the NMI line. A low to high transition latches an
// NMI request.
func (l *Lines) SetNMI(level bool) {
	if level && !l.NMILevel {
		l.NMILatched = true
	}
	l.NMILevel = level
}

// NMIPending returns true if an NMI is waiting to be serviced.
func (l *Lines) NMIPending() bool {
	return l.NMILatched
}

// AcknowledgeNMI is called by the CPU when it begins servicing the NMI.
func (l *Lines) AcknowledgeNMI() {
	l.NMILatched = false
}

// AssertIRQ adds the source to the list of sources asserting the IRQ line.
func (l *Lines) AssertIRQ(src Source) {
	l.IRQSources |= src
}

// ReleaseIRQ removes the source from the list of sources asserting the IRQ
// line.
func (l *Lines) ReleaseIRQ(src Source) {
	l.IRQSources &^= src
}

// IRQAsserted returns true if at least one source is asserting the IRQ line.
func (l *Lines) IRQAsserted() bool {
	return l.IRQSources != 0
}
