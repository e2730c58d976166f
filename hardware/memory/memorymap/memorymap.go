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

package memorymap

import "fmt"

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginIO   = uint16(0x4000)
	MemtopIO   = uint16(0x401f)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// The RAM and PPU areas are mirrored. The masks keep only the relevant bits
// of an address in those areas.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// maskPPUWindow identifies the bits that decide whether an address is in the
// PPU window
const maskPPUWindow = uint16(0xe000)

// MapAddress returns the normalised address and the area of memory that owns
// it. For the PPU area the normalised address is the register number (0 to 7).
// Addresses in the IO and Cartridge areas are not altered.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address&maskPPUWindow == OriginPPU {
		return address & MaskPPU, PPU
	}

	if address >= OriginIO && address <= MemtopIO {
		return address, IO
	}

	if address >= OriginCart {
		return address, Cartridge
	}

	return address & MaskRAM, RAM
}

// IsArea returns true if the address is in the specified area
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

// Summary returns a string describing the memory map.
func Summary() string {
	return fmt.Sprintf("%-9s %#04x -> %#04x (mirror %#04x)\n%-9s %#04x -> %#04x (mirror %#04x)\n%-9s %#04x -> %#04x\n%-9s %#04x -> %#04x\n",
		RAM, OriginRAM, MemtopRAM, MaskRAM+1,
		PPU, OriginPPU, MemtopPPU, MaskPPU+1,
		IO, OriginIO, MemtopIO,
		Cartridge, OriginCart, MemtopCart)
}
