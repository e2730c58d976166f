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

package hardware

import (
	"encoding/gob"
	"io"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/interrupts"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/hardware/ppu"
)

// InvalidState is returned by Plumb() and LoadState() when a state cannot be
// used.
const InvalidState = "nes: invalid state: %v"

// State is the complete state of the NES. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// The cartridge ROM is not part of the state, only the volatile memory of
// the cartridge.
type State struct {
	Spec string

	// the hash of the cartridge data when the state was created. the state
	// can only be plumbed into an NES with the same cartridge
	CartHash string

	CPU     cpu.State
	PPU     *ppu.State
	Mem     memory.State
	Cart    mapper.State
	Lines   interrupts.Lines
	Clock   clocks.Counter
	DMA     DMA
	Joypads [input.NumPorts]controllers.State
}

// Snapshot the state of the NES. The returned State shares no memory with the
// emulation.
func (nes *NES) Snapshot() *State {
	s := &State{
		Spec:     nes.Spec.ID,
		CartHash: nes.Mem.Cart.Hash,
		CPU:      nes.CPU.SaveState(),
		PPU:      nes.PPU.SaveState(),
		Mem:      nes.Mem.SaveState(),
		Cart:     nes.Mem.Cart.SaveState().Copy(),
		Lines:    nes.Lines,
		Clock:    nes.Clock,
		DMA:      nes.dma,
	}
	for i, j := range nes.Joypads {
		s.Joypads[i] = j.SaveState()
	}
	return s
}

// Plumb a previously snapshotted state into the NES. The state is not
// modified and can be plumbed more than once.
//
// Frame listeners are not part of the state and are unaffected.
func (nes *NES) Plumb(s *State) error {
	if s == nil {
		panic("nes: cannot plumb in a nil state")
	}

	if s.Spec != nes.Spec.ID {
		return curated.Errorf(InvalidState, "state is for a different specification")
	}
	if s.CartHash != nes.Mem.Cart.Hash {
		return curated.Errorf(InvalidState, "state is for a different cartridge")
	}
	if s.PPU == nil {
		return curated.Errorf(InvalidState, "missing PPU state")
	}
	if len(s.Mem.RAM) != len(nes.Mem.RAM.RAM) {
		return curated.Errorf(InvalidState, "RAM is the wrong size")
	}

	if err := nes.Mem.Cart.RestoreState(s.Cart.Copy()); err != nil {
		return curated.Errorf(InvalidState, err)
	}

	nes.CPU.RestoreState(s.CPU)
	nes.PPU.RestoreState(s.PPU)
	nes.Mem.RestoreState(s.Mem)
	nes.Lines = s.Lines
	nes.Clock = s.Clock
	nes.dma = s.DMA
	for i, j := range nes.Joypads {
		j.RestoreState(s.Joypads[i])
	}

	return nil
}

// Save the state to the io.Writer.
func (s *State) Save(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return curated.Errorf("nes: save state: %v", err)
	}
	return nil
}

// LoadState reads a state previously written by State.Save().
func LoadState(r io.Reader) (*State, error) {
	s := &State{}
	if err := gob.NewDecoder(r).Decode(s); err != nil {
		return nil, curated.Errorf(InvalidState, err)
	}
	return s, nil
}
