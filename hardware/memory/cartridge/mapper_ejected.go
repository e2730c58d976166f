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
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// EjectedValue is the value driven onto the data bus for every cartridge
// address when no cartridge is attached.
const EjectedValue = uint8(0x00)

const ejectedID = "-"

// ejected implements the mapper.CartMapper interface.
type ejected struct {
}

func newEjected() *ejected {
	return &ejected{}
}

// ID implements the mapper.CartMapper interface.
func (cart *ejected) ID() string {
	return ejectedID
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *ejected) MappedBanks() string {
	return "ejected"
}

// Reset implements the mapper.CartMapper interface.
func (cart *ejected) Reset() {
}

// Access implements the mapper.CartMapper interface.
func (cart *ejected) Access(_ uint16, _ bool) (uint8, uint8) {
	return EjectedValue, mapper.CartDrivenPins
}

// AccessVolatile implements the mapper.CartMapper interface.
func (cart *ejected) AccessVolatile(_ uint16, _ uint8, _ bool) {
}

// AccessCHR implements the mapper.CartMapper interface.
func (cart *ejected) AccessCHR(_ uint16) uint8 {
	return EjectedValue
}

// AccessCHRVolatile implements the mapper.CartMapper interface.
func (cart *ejected) AccessCHRVolatile(_ uint16, _ uint8) {
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *ejected) Mirroring() mapper.Mirroring {
	return mapper.MirrorHorizontal
}

// SaveState implements the mapper.CartMapper interface.
func (cart *ejected) SaveState() mapper.State {
	return mapper.State{ID: ejectedID}
}

// RestoreState implements the mapper.CartMapper interface.
func (cart *ejected) RestoreState(_ mapper.State) error {
	return nil
}
