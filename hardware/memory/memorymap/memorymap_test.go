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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/test"
)

func TestMapAddress(t *testing.T) {
	tests := []struct {
		address uint16
		mapped  uint16
		area    memorymap.Area
	}{
		{0x0000, 0x0000, memorymap.RAM},
		{0x07ff, 0x07ff, memorymap.RAM},
		{0x0800, 0x0000, memorymap.RAM},
		{0x1fff, 0x07ff, memorymap.RAM},
		{0x2000, 0x0000, memorymap.PPU},
		{0x2007, 0x0007, memorymap.PPU},
		{0x2008, 0x0000, memorymap.PPU},
		{0x3ffe, 0x0006, memorymap.PPU},
		{0x4000, 0x4000, memorymap.IO},
		{0x4014, 0x4014, memorymap.IO},
		{0x401f, 0x401f, memorymap.IO},
		{0x4020, 0x4020, memorymap.Cartridge},
		{0x6000, 0x6000, memorymap.Cartridge},
		{0xffff, 0xffff, memorymap.Cartridge},
	}

	for _, tt := range tests {
		mapped, area := memorymap.MapAddress(tt.address)
		test.ExpectEquality(t, mapped, tt.mapped, tt.address)
		test.ExpectEquality(t, area, tt.area, tt.address)
	}
}

func TestEveryAddressHasOneOwner(t *testing.T) {
	var counts [5]int
	for a := 0; a <= 0xffff; a++ {
		_, area := memorymap.MapAddress(uint16(a))
		test.ExpectInequality(t, area, memorymap.Undefined, a)
		counts[area]++
	}
	test.ExpectEquality(t, counts[memorymap.RAM], 0x2000)
	test.ExpectEquality(t, counts[memorymap.PPU], 0x2000)
	test.ExpectEquality(t, counts[memorymap.IO], 0x20)
	test.ExpectEquality(t, counts[memorymap.Cartridge], 0x10000-0x4020)
}
