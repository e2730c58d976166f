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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/television"
)

// Video is a chained hash of every frame. It implements the
// television.FrameTrigger interface.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte

	// number of frames that have contributed to the hash
	Frames int
}

// two bytes for every pixel
const pixelDepth = 2

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+television.FrameWidth*television.FrameHeight*pixelDepth),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.Frames = 0
}

// NewFrame implements the television.FrameTrigger interface.
func (dig *Video) NewFrame(frame *television.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the pixel data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return fmt.Errorf("digest: video: digest error during new frame")
	}

	for i, p := range frame.Pixels {
		binary.LittleEndian.PutUint16(dig.pixels[sha1.Size+i*pixelDepth:], p)
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.Frames++

	return nil
}
