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

package television

import (
	"image"

	"github.com/jetsetilly/gophernes/hardware/television/specification"
)

// The dimensions of a frame in pixels.
const (
	FrameWidth  = specification.VisibleDots
	FrameHeight = specification.VisibleScanlines
)

// Frame is a complete picture as generated by the PPU. Each pixel is an index
// into the master palette combined with the emphasis bits that were active
// when the pixel was generated. See specification.GetColor().
type Frame struct {
	// the number of the frame since power on
	Number uint64

	Pixels [FrameWidth * FrameHeight]uint16
}

// Pixel returns the value of the pixel at the coordinates. Coordinates must
// be in range.
func (f *Frame) Pixel(x, y int) uint16 {
	return f.Pixels[y*FrameWidth+x]
}

// SetPixel sets the value of the pixel at the coordinates. Coordinates must
// be in range.
func (f *Frame) SetPixel(x, y int, v uint16) {
	f.Pixels[y*FrameWidth+x] = v
}

// Image converts the frame to an RGBA image using the palette of the
// specification.
func (f *Frame) Image(spec specification.Spec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	for y := range FrameHeight {
		for x := range FrameWidth {
			img.SetRGBA(x, y, spec.GetColor(f.Pixel(x, y)))
		}
	}
	return img
}

// FrameTrigger implementations listen for NewFrame events. The frame is only
// valid for the duration of the call. Implementations that need the frame
// after NewFrame() has returned must make a copy.
type FrameTrigger interface {
	NewFrame(frame *Frame) error
}
