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

// Package clocks defines the relationship between the CPU clock and the PPU
// dot clock, and the counter that distributes dots across CPU cycles.
//
// In the NTSC console the PPU runs three dots for every CPU cycle. In the PAL
// console the ratio is 3.2 dots per CPU cycle, expressed here as 16 dots for
// every 5 cycles.
//
// Values taken from:
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks

// CPU clock speeds in MHz.
const (
	NTSC  = 1.789773
	PAL   = 1.662607
	Dendy = 1.773448
)
