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

// Package mapper contains the definitions that cartridge mappers must
// satisfy.
package mapper

// CartDrivenPins is included for clarity. In the vast majority of cases a
// cartridge mapper will drive all pins on the data bus during access. Use
// CartDrivenPins rather than 0xff.
//
// In the case where the data bus pins are not driven a 0 will suffice.
const CartDrivenPins = 0xff

// Mirroring describes how the two physical nametables of the console are
// arranged in the four logical nametables of the PPU address space.
type Mirroring int

// List of valid Mirroring values.
const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorSingleLower
	MirrorSingleUpper
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorSingleLower:
		return "single lower"
	case MirrorSingleUpper:
		return "single upper"
	case MirrorFourScreen:
		return "four screen"
	}
	return "unknown mirroring"
}

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to individual addresses.
//
// CPU side addresses are not normalised. They are in the range 0x4020 to
// 0xffff. PPU side addresses are in the range 0x0000 to 0x1fff.
type CartMapper interface {
	ID() string
	MappedBanks() string

	// reset volatile areas of the cartridge. NROM has no registers but
	// other mappers will reset them here
	Reset()

	// access the cartridge at the specified address. the mask return value
	// identifies which data pins are being driven by the cartridge. pins that
	// are not driven will show the open bus value
	Access(addr uint16, peek bool) (data uint8, mask uint8)

	// write to the cartridge. with poke set the write should affect ROM as
	// well as RAM
	AccessVolatile(addr uint16, data uint8, poke bool)

	// pattern table access from the PPU
	AccessCHR(addr uint16) uint8
	AccessCHRVolatile(addr uint16, data uint8)

	// mirroring is queried by the PPU on every nametable access and so
	// mappers are free to change it at any time
	Mirroring() Mirroring

	SaveState() State
	RestoreState(State) error
}

// State is the serialisable state of a mapper. Read-only data is not part of
// the state.
type State struct {
	ID        string
	PRGRAM    []uint8
	CHRRAM    []uint8
	Registers []uint8
}

// Copy returns a deep copy of the state
func (s State) Copy() State {
	n := State{ID: s.ID}
	n.PRGRAM = append([]uint8(nil), s.PRGRAM...)
	n.CHRRAM = append([]uint8(nil), s.CHRRAM...)
	n.Registers = append([]uint8(nil), s.Registers...)
	return n
}
