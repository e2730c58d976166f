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

// Package testrom assembles small NROM cartridges for use in tests. Code is
// placed by address in a single 16K PRG bank, mirrored at $8000 and $c000.
//
//	rom := testrom.New()
//	rom.At(0x8000, 0xe8, 0x4c, 0x00, 0x80)
//	rom.Vectors(0x8000, 0x8000, 0x8000)
//	cart, err := rom.Cartridge()
package testrom

import (
	"fmt"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// ROM is an NROM image under construction.
type ROM struct {
	PRG       []uint8
	CHR       []uint8
	Mirroring mapper.Mirroring
}

// New returns a ROM with an empty 16K PRG bank and CHR RAM. All three
// vectors point to $8000.
func New() *ROM {
	rom := &ROM{
		PRG:       make([]uint8, cartridge.PRGBankSize),
		Mirroring: mapper.MirrorVertical,
	}
	rom.Vectors(0x8000, 0x8000, 0x8000)
	return rom
}

// At places data at the address, which should be in the range $8000 to
// $ffff.
func (rom *ROM) At(address uint16, data ...uint8) *ROM {
	copy(rom.PRG[int(address)%len(rom.PRG):], data)
	return rom
}

// Vectors sets the NMI, reset and IRQ vectors.
func (rom *ROM) Vectors(nmi, reset, irq uint16) *ROM {
	return rom.At(0xfffa,
		uint8(nmi), uint8(nmi>>8),
		uint8(reset), uint8(reset>>8),
		uint8(irq), uint8(irq>>8))
}

// WithCHR adds 8K of CHR ROM. The value of each byte is decided by the
// function.
func (rom *ROM) WithCHR(fn func(address int) uint8) *ROM {
	rom.CHR = make([]uint8, cartridge.CHRBankSize)
	for i := range rom.CHR {
		rom.CHR[i] = fn(i)
	}
	return rom
}

// Bytes returns the ROM in iNES format.
func (rom *ROM) Bytes() []uint8 {
	return cartridge.EncodeINES(cartridge.Image{
		Header: cartridge.Header{
			Mirroring:   rom.Mirroring,
			PRGRAMBanks: 1,
		},
		PRG: rom.PRG,
		CHR: rom.CHR,
	})
}

// Loader returns a cartridge loader for the ROM.
func (rom *ROM) Loader() cartridgeloader.Loader {
	return cartridgeloader.NewLoaderFromData("testrom.nes", rom.Bytes())
}

// Cartridge returns a new cartridge with the ROM attached.
func (rom *ROM) Cartridge() (*cartridge.Cartridge, error) {
	cart := cartridge.NewCartridge()
	if err := cart.Attach(rom.Loader()); err != nil {
		return nil, fmt.Errorf("testrom: %w", err)
	}
	return cart, nil
}
