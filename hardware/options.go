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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/television/specification"
)

// List of error patterns returned by NewNES() when the Options are invalid.
const (
	UnsupportedSpec    = "nes: unsupported specification: %v"
	UnsupportedVariant = "nes: unsupported cpu variant: %v"
)

// Options control the construction of a new NES.
type Options struct {
	// the name of the television specification. one of the values in
	// specification.SpecList
	Spec string

	// the ratio of PPU dots to CPU cycles. the zero value means the ratio
	// of the specification is used
	Ratio clocks.Ratio

	// randomise the contents of RAM, VRAM, OAM and the CPU registers on
	// power on. the randomisation is deterministic for the seed
	RandomState bool
	Seed        int64

	// ignore writes to the PPU configuration registers until the end of the
	// first vblank after power on
	PPUWarmUp bool

	Variant cpu.Variant

	// emulations other than the main emulation do not log
	Label environment.Label
}

// NewOptions returns the default options.
func NewOptions() Options {
	return Options{
		Spec:    "NTSC",
		Variant: cpu.RP2A03,
		Label:   environment.MainEmulation,
	}
}

// resolve the options into a specification and a ratio
func (opts Options) resolve() (specification.Spec, clocks.Ratio, error) {
	spec, ok := specification.GetSpec(opts.Spec)
	if !ok {
		return specification.Spec{}, clocks.Ratio{}, curated.Errorf(UnsupportedSpec, opts.Spec)
	}

	switch opts.Variant {
	case cpu.RP2A03, cpu.NMOS:
	default:
		return specification.Spec{}, clocks.Ratio{}, curated.Errorf(UnsupportedVariant, opts.Variant)
	}

	ratio := spec.Ratio
	if opts.Ratio != (clocks.Ratio{}) {
		ratio = opts.Ratio
	}
	if err := ratio.Validate(); err != nil {
		return specification.Spec{}, clocks.Ratio{}, err
	}

	return spec, ratio, nil
}
