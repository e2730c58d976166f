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
	"fmt"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/logger"
)

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	// short name of the cartridge suitable for use in filenames
	Name string

	// header information of the attached image. the zero value if the
	// cartridge is ejected
	Header Header

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type. The cartridge will be in the ejected state.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s (%s)", cart.Filename, cart.mapper.ID())
}

// Summary returns brief information about the cartridge. Two lines: the first
// line is the path to the cartridge and the second line is information about
// the mapper.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s [%s]", cart.Filename, cart.mapper.ID(), cart.mapper.MappedBanks())
}

// ID returns the mapper ID
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// GetMapper returns the current mapper
func (cart *Cartridge) GetMapper() mapper.CartMapper {
	return cart.mapper
}

// Eject removes the cartridge. Unlike real hardware, an ejected cartridge
// drives a constant value onto the bus.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.Name = ""
	cart.Hash = ""
	cart.Header = Header{}
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Attach the cartridge loader to the NES and make the data available to the
// CPU and PPU. On error the cartridge is left in the ejected state.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	cart.Eject()

	err := cartload.Load()
	if err != nil {
		return err
	}

	img, err := DecodeINES(cartload.Data)
	if err != nil {
		return err
	}

	mapping := cartload.Mapping
	if mapping == "AUTO" || mapping == "" {
		switch img.Header.Mapper {
		case 0:
			mapping = "NROM"
		default:
			return curated.Errorf(UnsupportedMapper, img.Header.Mapper)
		}
	}

	var m mapper.CartMapper

	switch mapping {
	case "NROM":
		m, err = newNROM(img)
		if err != nil {
			return curated.Errorf(InvalidImage, err)
		}
	default:
		return curated.Errorf(UnsupportedMapper, mapping)
	}

	cart.Filename = cartload.Filename
	cart.Name = cartload.ShortName()
	cart.Hash = cartload.Hash
	cart.Header = img.Header
	cart.mapper = m

	logger.Logf(logger.Allow, "CARTRIDGE", "attached %s: %s", cartload.ShortName(), img.Header)

	return nil
}

// Reset volatile areas of the cartridge.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Access the cartridge from the CPU side. The mask return value identifies
// which pins of the data bus are being driven.
func (cart *Cartridge) Access(addr uint16, peek bool) (uint8, uint8) {
	return cart.mapper.Access(addr, peek)
}

// AccessVolatile writes to the cartridge from the CPU side.
func (cart *Cartridge) AccessVolatile(addr uint16, data uint8, poke bool) {
	cart.mapper.AccessVolatile(addr, data, poke)
}

// AccessCHR reads pattern data.
func (cart *Cartridge) AccessCHR(addr uint16) uint8 {
	return cart.mapper.AccessCHR(addr)
}

// AccessCHRVolatile writes pattern data. Has no effect for CHR ROM.
func (cart *Cartridge) AccessCHRVolatile(addr uint16, data uint8) {
	cart.mapper.AccessCHRVolatile(addr, data)
}

// Mirroring returns the current nametable arrangement.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	return cart.mapper.Mirroring()
}

// SaveState returns the serialisable state of the mapper.
func (cart *Cartridge) SaveState() mapper.State {
	return cart.mapper.SaveState()
}

// RestoreState restores state previously returned by SaveState(). The state
// must have come from the same type of mapper.
func (cart *Cartridge) RestoreState(s mapper.State) error {
	if s.ID != cart.mapper.ID() {
		return curated.Errorf(StateMismatch, s.ID, cart.mapper.ID())
	}
	return cart.mapper.RestoreState(s)
}
