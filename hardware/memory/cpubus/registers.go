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

package cpubus

// Registers that are accessible to the CPU. The PPU registers are mirrored
// every eight bytes through to 0x3fff. Only the canonical address is listed.
const (
	PPUCTRL   = uint16(0x2000)
	PPUMASK   = uint16(0x2001)
	PPUSTATUS = uint16(0x2002)
	OAMADDR   = uint16(0x2003)
	OAMDATA   = uint16(0x2004)
	PPUSCROLL = uint16(0x2005)
	PPUADDR   = uint16(0x2006)
	PPUDATA   = uint16(0x2007)

	SNDCHN = uint16(0x4015)
	OAMDMA = uint16(0x4014)
	JOY1   = uint16(0x4016)
	JOY2   = uint16(0x4017)
)

// PPURegisterNames are the names of the PPU registers indexed by register
// number
var PPURegisterNames = [8]string{
	"PPUCTRL", "PPUMASK", "PPUSTATUS", "OAMADDR",
	"OAMDATA", "PPUSCROLL", "PPUADDR", "PPUDATA",
}

// RegisterName returns the name of the register at the address or the empty
// string if the address is not a register
func RegisterName(address uint16) string {
	if address&0xe000 == PPUCTRL {
		return PPURegisterNames[address&0x07]
	}
	switch address {
	case SNDCHN:
		return "SNDCHN"
	case OAMDMA:
		return "OAMDMA"
	case JOY1:
		return "JOY1"
	case JOY2:
		return "JOY2"
	}
	return ""
}
