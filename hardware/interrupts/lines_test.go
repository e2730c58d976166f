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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/interrupts"
	"github.com/jetsetilly/gophernes/test"
)

func TestNMIEdge(t *testing.T) {
	var l interrupts.Lines

	test.ExpectFailure(t, l.NMIPending())

	// rising edge latches
	l.SetNMI(true)
	test.ExpectSuccess(t, l.NMIPending())

	// latched request survives the line going low
	l.SetNMI(false)
	test.ExpectSuccess(t, l.NMIPending())

	l.AcknowledgeNMI()
	test.ExpectFailure(t, l.NMIPending())

	// holding the line high does not retrigger
	l.SetNMI(true)
	l.AcknowledgeNMI()
	l.SetNMI(true)
	test.ExpectFailure(t, l.NMIPending())

	// but a new edge does
	l.SetNMI(false)
	l.SetNMI(true)
	test.ExpectSuccess(t, l.NMIPending())
}

func TestIRQLevel(t *testing.T) {
	var l interrupts.Lines

	test.ExpectFailure(t, l.IRQAsserted())

	l.AssertIRQ(interrupts.APUFrame)
	l.AssertIRQ(interrupts.Cartridge)
	test.ExpectSuccess(t, l.IRQAsserted())

	// line stays asserted while any source asserts it
	l.ReleaseIRQ(interrupts.APUFrame)
	test.ExpectSuccess(t, l.IRQAsserted())
	l.ReleaseIRQ(interrupts.Cartridge)
	test.ExpectFailure(t, l.IRQAsserted())

	test.ExpectEquality(t, l.String(), "nmi irq")
	l.SetNMI(true)
	l.AssertIRQ(interrupts.External)
	test.ExpectEquality(t, l.String(), "NMI* IRQ(1000)")
}
