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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/random"
)

// UnpokeableAddress is the pattern for errors returned by Poke() for
// addresses that cannot be poked without side effects.
const UnpokeableAddress = "memory: address %#04x cannot be poked"

// Access records the details of a single bus access.
type Access struct {
	Address uint16
	Data    uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("write %#02x -> %#04x", a.Data, a.Address)
	}
	return fmt.Sprintf("read %#04x -> %#02x", a.Address, a.Data)
}

// Memory is the bus between the CPU and the rest of the NES. It implements
// the cpubus.Memory and cpubus.Debugger interfaces.
type Memory struct {
	RAM  *RAM
	Cart *cartridge.Cartridge

	ppu   PPUBus
	dma   DMAController
	ports [2]InputPort
	audio AudioSink

	// the last value driven onto the data bus
	openBus uint8

	// the most recent access by the CPU
	LastAccess Access
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(rnd *random.Random, cart *cartridge.Cartridge) *Memory {
	mem := &Memory{
		RAM:  NewRAM(rnd),
		Cart: cart,
	}
	if mem.Cart == nil {
		mem.Cart = cartridge.NewCartridge()
	}
	return mem
}

// Plumb connects the PPU and the DMA controller to the bus.
func (mem *Memory) Plumb(ppu PPUBus, dma DMAController) {
	mem.ppu = ppu
	mem.dma = dma
}

// AttachPort connects an input device to one of the two joypad ports. A nil
// device disconnects the port.
func (mem *Memory) AttachPort(port int, dev InputPort) {
	mem.ports[port&0x01] = dev
}

// AttachAudio connects the sink for audio register writes. A nil sink
// disconnects it.
func (mem *Memory) AttachAudio(audio AudioSink) {
	mem.audio = audio
}

// PowerOn sets RAM to the power on state and clears the open bus value.
func (mem *Memory) PowerOn() {
	mem.RAM.PowerOn()
	mem.openBus = 0
	mem.LastAccess = Access{}
}

// OpenBus returns the last value driven onto the data bus.
func (mem *Memory) OpenBus() uint8 {
	return mem.openBus
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	var data uint8

	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.PPU:
		data = mem.ppu.ReadRegister(ma)
	case memorymap.IO:
		data = mem.readIO(ma, false)
	case memorymap.Cartridge:
		d, mask := mem.Cart.Access(ma, false)
		data = (d & mask) | (mem.openBus &^ mask)
	default:
		data = mem.RAM.Read(ma)
	}

	mem.openBus = data
	mem.LastAccess = Access{Address: address, Data: data}

	return data
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.openBus = data
	mem.LastAccess = Access{Address: address, Data: data, Write: true}

	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.PPU:
		mem.ppu.WriteRegister(ma, data)
	case memorymap.IO:
		mem.writeIO(ma, data)
	case memorymap.Cartridge:
		mem.Cart.AccessVolatile(ma, data, false)
	default:
		mem.RAM.Write(ma, data)
	}
}

// Peek implements the cpubus.Debugger interface.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.PPU:
		return mem.ppu.PeekRegister(ma)
	case memorymap.IO:
		return mem.readIO(ma, true)
	case memorymap.Cartridge:
		d, mask := mem.Cart.Access(ma, true)
		return (d & mask) | (mem.openBus &^ mask)
	}
	return mem.RAM.Read(ma)
}

// Poke implements the cpubus.Debugger interface. Poking the cartridge area
// will change ROM. The PPU and IO areas cannot be poked.
func (mem *Memory) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.PPU, memorymap.IO:
		return curated.Errorf(UnpokeableAddress, address)
	case memorymap.Cartridge:
		mem.Cart.AccessVolatile(ma, data, true)
	default:
		mem.RAM.Write(ma, data)
	}
	return nil
}

func (mem *Memory) readIO(address uint16, peek bool) uint8 {
	switch address {
	case cpubus.JOY1, cpubus.JOY2:
		dev := mem.ports[address-cpubus.JOY1]
		if dev == nil {
			return mem.openBus
		}
		var d uint8
		if peek {
			d = dev.Peek()
		} else {
			d = dev.Read()
		}
		return (d & 0x1f) | (mem.openBus & 0xe0)

	case cpubus.SNDCHN:
		if st, ok := mem.audio.(AudioStatus); ok {
			// bit 5 of the status register is not driven
			return (st.ReadStatus() &^ 0x20) | (mem.openBus & 0x20)
		}
	}

	return mem.openBus
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	switch address {
	case cpubus.OAMDMA:
		if mem.dma != nil {
			mem.dma.RequestOAMDMA(data)
		}
		return

	case cpubus.JOY1:
		// the strobe line is shared by both ports
		for _, dev := range mem.ports {
			if dev != nil {
				dev.Strobe(data)
			}
		}
		return
	}

	// audio registers. JOY2 when written is the frame counter of the audio
	// unit
	if address <= 0x4013 || address == cpubus.SNDCHN || address == cpubus.JOY2 {
		if mem.audio != nil {
			mem.audio.WriteAudio(address, data)
		}
	}
}

// State is the serialisable state of the bus, including RAM.
type State struct {
	RAM     []uint8
	OpenBus uint8
	Last    Access
}

// SaveState returns the current state of the bus. Cartridge state is saved
// separately.
func (mem *Memory) SaveState() State {
	return State{
		RAM:     append([]uint8(nil), mem.RAM.RAM...),
		OpenBus: mem.openBus,
		Last:    mem.LastAccess,
	}
}

// RestoreState restores state previously returned by SaveState().
func (mem *Memory) RestoreState(s State) {
	copy(mem.RAM.RAM, s.RAM)
	mem.openBus = s.OpenBus
	mem.LastAccess = s.Last
}
