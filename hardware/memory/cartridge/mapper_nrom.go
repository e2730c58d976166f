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

package cartridge

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// nrom implements the mapper.CartMapper interface. NROM is mapper 0 in the
// iNES numbering. It has no bank switching. 16K of PRG ROM is mirrored into
// both halves of the 0x8000 to 0xffff range.
//
// PRG RAM is always present at 0x6000 to 0x7fff because there is no way to
// tell from a version 1 header whether the board has it.
type nrom struct {
	prg       []uint8
	chr       []uint8
	chrRAM    bool
	ram       []uint8
	mirroring mapper.Mirroring
}

func newNROM(img Image) (*nrom, error) {
	cart := &nrom{
		prg:       img.PRG,
		chr:       img.CHR,
		mirroring: img.Header.Mirroring,
	}

	if len(cart.prg) != PRGBankSize && len(cart.prg) != PRGBankSize*2 {
		return nil, curated.Errorf(WrongSize, "NROM", "PRG ROM", len(cart.prg))
	}

	switch len(cart.chr) {
	case 0:
		cart.chr = make([]uint8, CHRBankSize)
		cart.chrRAM = true
	case CHRBankSize:
	default:
		return nil, curated.Errorf(WrongSize, "NROM", "CHR ROM", len(cart.chr))
	}

	cart.ram = make([]uint8, PRGRAMBankSize)

	// the trainer lives at 0x7000 in PRG RAM
	copy(cart.ram[0x1000:], img.Trainer)

	return cart, nil
}

// ID implements the mapper.CartMapper interface.
func (cart *nrom) ID() string {
	return "NROM"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *nrom) MappedBanks() string {
	if len(cart.prg) == PRGBankSize {
		return "PRG 16K (mirrored)"
	}
	return "PRG 32K"
}

// Reset implements the mapper.CartMapper interface.
func (cart *nrom) Reset() {
}

// Access implements the mapper.CartMapper interface.
func (cart *nrom) Access(addr uint16, _ bool) (uint8, uint8) {
	if addr >= 0x8000 {
		return cart.prg[int(addr-0x8000)%len(cart.prg)], mapper.CartDrivenPins
	}
	if addr >= 0x6000 {
		return cart.ram[addr-0x6000], mapper.CartDrivenPins
	}
	return 0, 0
}

// AccessVolatile implements the mapper.CartMapper interface.
func (cart *nrom) AccessVolatile(addr uint16, data uint8, poke bool) {
	if addr >= 0x8000 {
		if poke {
			cart.prg[int(addr-0x8000)%len(cart.prg)] = data
		}
		return
	}
	if addr >= 0x6000 {
		cart.ram[addr-0x6000] = data
	}
}

// AccessCHR implements the mapper.CartMapper interface.
func (cart *nrom) AccessCHR(addr uint16) uint8 {
	return cart.chr[addr&0x1fff]
}

// AccessCHRVolatile implements the mapper.CartMapper interface.
func (cart *nrom) AccessCHRVolatile(addr uint16, data uint8) {
	if cart.chrRAM {
		cart.chr[addr&0x1fff] = data
	}
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *nrom) Mirroring() mapper.Mirroring {
	return cart.mirroring
}

// SaveState implements the mapper.CartMapper interface.
func (cart *nrom) SaveState() mapper.State {
	s := mapper.State{
		ID:     cart.ID(),
		PRGRAM: append([]uint8(nil), cart.ram...),
	}
	if cart.chrRAM {
		s.CHRRAM = append([]uint8(nil), cart.chr...)
	}
	return s
}

// RestoreState implements the mapper.CartMapper interface.
func (cart *nrom) RestoreState(s mapper.State) error {
	if len(s.PRGRAM) != len(cart.ram) {
		return curated.Errorf(WrongSize, "NROM state", "PRG RAM", len(s.PRGRAM))
	}
	if cart.chrRAM && len(s.CHRRAM) != len(cart.chr) {
		return curated.Errorf(WrongSize, "NROM state", "CHR RAM", len(s.CHRRAM))
	}
	copy(cart.ram, s.PRGRAM)
	if cart.chrRAM {
		copy(cart.chr, s.CHRRAM)
	}
	return nil
}
