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

package clocks

import "fmt"

// Counter is the shared count of CPU cycles and PPU dots since power on. It
// also decides how many dots are due for the next CPU cycle, spreading the
// remainder of a non-integer ratio evenly.
//
// The fields are exported so that the counter can be included in snapshots.
type Counter struct {
	CPUCycles uint64
	PPUDots   uint64

	// accumulated fraction of a dot, in units of 1/Ratio.Cycles
	Remainder int
}

func (c Counter) String() string {
	return fmt.Sprintf("cycles=%d dots=%d", c.CPUCycles, c.PPUDots)
}

// Cycles implements the random.Clock interface.
func (c *Counter) Cycles() uint64 {
	return c.CPUCycles
}

// Reset counters to zero.
func (c *Counter) Reset() {
	*c = Counter{}
}

// Dots returns the number of dots that should be run before the next CPU
// cycle. The counter is advanced by one CPU cycle and by the returned
// number of dots. The Ratio should have been validated.
func (c *Counter) Dots(r Ratio) int {
	c.Remainder += r.Dots
	n := c.Remainder / r.Cycles
	c.Remainder -= n * r.Cycles
	c.CPUCycles++
	c.PPUDots += uint64(n)
	return n
}
