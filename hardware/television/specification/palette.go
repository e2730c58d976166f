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

package specification

import (
	"image/color"
)

// Palette is the 64 entry master palette of the 2C02. Values are a common
// approximation of the composite output of an NTSC console.
var Palette = [64]color.RGBA{
	{84, 84, 84, 255}, {0, 30, 116, 255}, {8, 16, 144, 255}, {48, 0, 136, 255},
	{68, 0, 100, 255}, {92, 0, 48, 255}, {84, 4, 0, 255}, {60, 24, 0, 255},
	{32, 42, 0, 255}, {8, 58, 0, 255}, {0, 64, 0, 255}, {0, 60, 0, 255},
	{0, 50, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{152, 150, 152, 255}, {8, 76, 196, 255}, {48, 50, 236, 255}, {92, 30, 228, 255},
	{136, 20, 176, 255}, {160, 20, 100, 255}, {152, 34, 32, 255}, {120, 60, 0, 255},
	{84, 90, 0, 255}, {40, 114, 0, 255}, {8, 124, 0, 255}, {0, 118, 40, 255},
	{0, 102, 120, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{236, 238, 236, 255}, {76, 154, 236, 255}, {120, 124, 236, 255}, {176, 98, 236, 255},
	{228, 84, 236, 255}, {236, 88, 180, 255}, {236, 106, 100, 255}, {212, 136, 32, 255},
	{160, 170, 0, 255}, {116, 196, 0, 255}, {76, 208, 32, 255}, {56, 204, 108, 255},
	{56, 180, 204, 255}, {60, 60, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{236, 238, 236, 255}, {168, 204, 236, 255}, {188, 188, 236, 255}, {212, 178, 236, 255},
	{236, 174, 236, 255}, {236, 174, 212, 255}, {236, 180, 176, 255}, {228, 196, 144, 255},
	{204, 210, 120, 255}, {180, 222, 120, 255}, {168, 226, 144, 255}, {152, 226, 180, 255},
	{160, 214, 228, 255}, {160, 162, 160, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
}

// the bits of a pixel value as stored in a frame. the lower six bits index
// the master palette and the next three bits are the emphasis bits from the
// mask register
const (
	PixelColour   = 0x003f
	EmphasisRed   = 0x0040
	EmphasisGreen = 0x0080
	EmphasisBlue  = 0x0100
)

// channels that are not emphasised are attenuated by this factor
const attenuation = 0.816

// GetColor translates a pixel value to the color type.
func (spec Spec) GetColor(pixel uint16) color.RGBA {
	col := Palette[pixel&PixelColour]

	emph := pixel & (EmphasisRed | EmphasisGreen | EmphasisBlue)
	if emph == 0 {
		return col
	}

	red := emph&EmphasisRed == EmphasisRed
	green := emph&EmphasisGreen == EmphasisGreen
	if spec.SwapEmphasis {
		red, green = green, red
	}
	blue := emph&EmphasisBlue == EmphasisBlue

	// emphasis has no effect on the black column of the palette
	if pixel&0x0e == 0x0e {
		return col
	}

	if !red {
		col.R = uint8(float64(col.R) * attenuation)
	}
	if !green {
		col.G = uint8(float64(col.G) * attenuation)
	}
	if !blue {
		col.B = uint8(float64(col.B) * attenuation)
	}

	return col
}
