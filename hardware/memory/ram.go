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

package memory

import (
	"encoding/hex"

	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/random"
)

// RAM represents the 2K of internal RAM. It is mirrored four times in the
// 0x0000 to 0x1fff range.
type RAM struct {
	rnd *random.Random

	RAM []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
// If rnd is nil then RAM will be zeroed on power on.
func NewRAM(rnd *random.Random) *RAM {
	ram := &RAM{
		rnd: rnd,
		RAM: make([]uint8, memorymap.MaskRAM+1),
	}
	return ram
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.RAM = make([]uint8, len(ram.RAM))
	copy(n.RAM, ram.RAM)
	return &n
}

// PowerOn sets the contents of RAM to their power on values. Resetting the
// console does not change the contents of RAM.
func (ram *RAM) PowerOn() {
	if ram.rnd != nil {
		ram.rnd.Fill(ram.RAM)
		return
	}
	clear(ram.RAM)
}

func (ram *RAM) String() string {
	return hex.Dump(ram.RAM)
}

// Read from RAM. Address must be normalised.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.RAM[address&memorymap.MaskRAM]
}

// Write to RAM. Address must be normalised.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.RAM[address&memorymap.MaskRAM] = data
}
