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

// Package specification contains the definitions, including colour, of the
// NTSC, PAL and Dendy console types supported by the emulation.
package specification

import (
	"strings"

	"github.com/jetsetilly/gophernes/hardware/clocks"
)

// SpecList is the list of specifications that the console may adopt.
var SpecList = []string{"NTSC", "PAL", "DENDY"}

// The dimensions of the picture and the timing grid are the same for all
// specifications. Only the number of scanlines differs.
const (
	DotsPerScanline  = 341
	VisibleDots      = 256
	VisibleScanlines = 240
)

// Spec is used to define the console specifications.
type Spec struct {
	ID string

	// the total number of scanlines for the entire frame, including the
	// pre-render scanline
	ScanlinesTotal int

	// the scanline on which the vblank flag is set
	ScanlineVBlank int

	// the pre-render scanline is always the last scanline of the frame
	ScanlinePreRender int

	// NTSC consoles skip the last dot of the pre-render scanline on odd
	// frames when rendering is enabled
	OddFrameSkip bool

	// the ratio of PPU dots to CPU cycles
	Ratio clocks.Ratio

	// CPU clock in MHz
	ClockSpeed float64

	// the number of frames per second required by the specification
	FramesPerSecond float32

	// PAL consoles swap the red and green emphasis bits
	SwapEmphasis bool
}

// SpecNTSC is the specification for NTSC consoles.
var SpecNTSC = Spec{
	ID:                "NTSC",
	ScanlinesTotal:    262,
	ScanlineVBlank:    241,
	ScanlinePreRender: 261,
	OddFrameSkip:      true,
	Ratio:             clocks.RatioNTSC,
	ClockSpeed:        clocks.NTSC,
	FramesPerSecond:   60.0988,
}

// SpecPAL is the specification for PAL consoles.
var SpecPAL = Spec{
	ID:                "PAL",
	ScanlinesTotal:    312,
	ScanlineVBlank:    241,
	ScanlinePreRender: 311,
	Ratio:             clocks.RatioPAL,
	ClockSpeed:        clocks.PAL,
	FramesPerSecond:   50.0070,
	SwapEmphasis:      true,
}

// SpecDendy is the specification for the Dendy, a PAL famiclone with NTSC
// like timing and a late vblank.
var SpecDendy = Spec{
	ID:                "DENDY",
	ScanlinesTotal:    312,
	ScanlineVBlank:    291,
	ScanlinePreRender: 311,
	Ratio:             clocks.RatioDendy,
	ClockSpeed:        clocks.Dendy,
	FramesPerSecond:   50.0,
	SwapEmphasis:      true,
}

// GetSpec returns the specification with the given ID. The ID is not case
// sensitive. Returns false if the ID is not recognised.
func GetSpec(id string) (Spec, bool) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "NTSC":
		return SpecNTSC, true
	case "PAL":
		return SpecPAL, true
	case "DENDY":
		return SpecDendy, true
	}
	return Spec{}, false
}

// DotsPerFrame returns the number of dots in a frame, not counting any
// skipped dot.
func (spec Spec) DotsPerFrame() int {
	return spec.ScanlinesTotal * DotsPerScanline
}
