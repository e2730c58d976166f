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
	"fmt"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/interrupts"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controllers"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/hardware/television/specification"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/random"
)

// NoCartridge is returned by NewNES() if the cartridge is nil.
const NoCartridge = "nes: no cartridge"

// NES is the root of the emulation. It owns every sub-system and the shared
// state between them.
type NES struct {
	Env  *environment.Environment
	Spec specification.Spec

	// the ratio being used to advance the PPU
	Ratio clocks.Ratio

	// count of CPU cycles and PPU dots since power on
	Clock clocks.Counter

	// interrupt lines shared by the PPU and CPU
	Lines interrupts.Lines

	CPU *cpu.CPU
	Mem *memory.Memory
	PPU *ppu.PPU

	Joypads [input.NumPorts]*controllers.Joypad
	Input   *input.Input

	opts Options
	dma  DMA
}

// NewNES creates a new NES and everything associated with the hardware. The
// cartridge must not be nil but can be in the ejected state. The NES is
// powered on before being returned.
func NewNES(cart *cartridge.Cartridge, opts Options) (*NES, error) {
	if cart == nil {
		return nil, curated.Errorf(NoCartridge)
	}

	spec, ratio, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	nes := &NES{
		Spec:  spec,
		Ratio: ratio,
		opts:  opts,
	}

	nes.Env = environment.NewEnvironment(opts.Label, &nes.Clock, opts.Seed)
	nes.Env.RandomState = opts.RandomState

	var rnd *random.Random
	if opts.RandomState {
		rnd = nes.Env.Random
	}

	nes.Mem = memory.NewMemory(rnd, cart)
	nes.CPU = cpu.NewCPU(nes.Env, nes.Mem, &nes.Lines)
	nes.CPU.Variant = opts.Variant
	nes.PPU = ppu.NewPPU(nes.Env, spec, nes.Mem.Cart, &nes.Lines)
	nes.Mem.Plumb(nes.PPU, nes)

	for i := range nes.Joypads {
		nes.Joypads[i] = controllers.NewJoypad()
		nes.Mem.AttachPort(i, nes.Joypads[i])
	}
	nes.Input = input.NewInput(nes.Joypads)
	nes.PPU.AddFrameTrigger(nes.Input)

	nes.PowerOn()

	return nes, nil
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s %s\n%s\n%s", nes.Spec.ID, nes.Clock, nes.CPU, nes.PPU)
}

// AllowLogging implements the logger.Permission interface.
func (nes *NES) AllowLogging() bool {
	return nes.Env.AllowLogging()
}

// Options returns the options used to create the NES.
func (nes *NES) Options() Options {
	return nes.opts
}

// AttachCartridge attaches the cartridge specified by the loader and power
// cycles the NES. If the cartridge cannot be attached the NES is left with an
// ejected cartridge.
func (nes *NES) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := nes.Mem.Cart.Attach(cartload)
	nes.PowerOn()
	return err
}

// PowerOn puts the NES into its power on state. All memory is zeroed or
// randomised depending on the RandomState option. The CPU begins the reset
// sequence on the next tick.
func (nes *NES) PowerOn() {
	nes.Clock.Reset()
	nes.Lines.Reset()
	nes.dma = DMA{}
	nes.Mem.PowerOn()
	nes.Mem.Cart.Reset()
	nes.PPU.PowerOn(nes.opts.PPUWarmUp)
	nes.CPU.PowerOn()
	for _, j := range nes.Joypads {
		j.RestoreState(controllers.State{})
	}
	logger.Logf(nes, "NES", "power on (%s, %s)", nes.Spec.ID, nes.Ratio)
}

// Reset emulates the reset button. The contents of RAM and VRAM are
// unchanged.
func (nes *NES) Reset() {
	nes.dma = DMA{}
	nes.Lines.Reset()
	nes.Mem.Cart.Reset()
	nes.PPU.Reset()
	nes.CPU.Reset()
	logger.Log(nes, "NES", "reset")
}
