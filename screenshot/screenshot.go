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

// Package screenshot encodes frames from the PPU as PNG images. Frames are
// converted to RGB using the palette of the television specification and
// can be scaled by an integer factor with nearest-neighbour sampling.
package screenshot

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/hardware/television/specification"
	"golang.org/x/image/draw"
)

// List of error patterns returned by the screenshot package.
const (
	NoFrame      = "screenshot: no frame"
	InvalidScale = "screenshot: invalid scale: %d"
)

// the largest scale that can be requested
const maxScale = 8

// Scale the image by the integer factor.
func Scale(img image.Image, scale int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Image returns the frame as an image, scaled by the integer factor.
func Image(frame *television.Frame, spec specification.Spec, scale int) (*image.RGBA, error) {
	if frame == nil {
		return nil, curated.Errorf(NoFrame)
	}
	if scale < 1 || scale > maxScale {
		return nil, curated.Errorf(InvalidScale, scale)
	}
	img := frame.Image(spec)
	if scale == 1 {
		return img, nil
	}
	return Scale(img, scale), nil
}

// Write the frame to the io.Writer in PNG format.
func Write(w io.Writer, frame *television.Frame, spec specification.Spec, scale int) error {
	img, err := Image(frame, spec, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	return nil
}

// Save the frame to the named file in PNG format.
func Save(filename string, frame *television.Frame, spec specification.Spec, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer f.Close()

	if err := Write(f, frame, spec, scale); err != nil {
		return err
	}

	return f.Close()
}
