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

// Package interrupts implements the two interrupt lines of the 2A03.
//
// The NMI line is edge triggered. The PPU drives the line level and a
// transition from low to high latches an NMI request. The request remains
// latched until the CPU begins servicing it, regardless of what happens to
// the line level in the meantime.
//
// The IRQ line is level triggered and wired-OR. Any number of sources may
// assert the line and the line is asserted for as long as at least one source
// asserts it. The CPU only responds to the line when the interrupt-disable
// flag is clear.
//
// The Lines type is shared by reference between the PPU, the CPU and any
// external device that can raise an IRQ (the APU, a cartridge mapper). It is
// only ever changed during a tick of the emulation.
package interrupts
