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

// PPUBus is implemented by the PPU. The register argument is in the range 0
// to 7.
type PPUBus interface {
	ReadRegister(register uint16) uint8
	WriteRegister(register uint16, data uint8)
	PeekRegister(register uint16) uint8
}

// InputPort is implemented by devices connected to the joypad ports. Read()
// returns the bits the device drives in the lower five bits of the data bus.
type InputPort interface {
	Strobe(data uint8)
	Read() uint8
	Peek() uint8
}

// AudioSink receives writes to the audio registers. The audio unit itself is
// not part of the emulation but the writes are forwarded so that a sound
// generator or a logger can follow them.
type AudioSink interface {
	WriteAudio(address uint16, data uint8)
}

// AudioStatus is optionally implemented by an AudioSink. If it is not then
// reading the sound channel register returns the open bus value.
type AudioStatus interface {
	ReadStatus() uint8
}

// DMAController is implemented by the component that performs OAM DMA.
type DMAController interface {
	RequestOAMDMA(page uint8)
}
