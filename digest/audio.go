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
	"fmt"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// the buffer is flushed when there is no room for another write
const audioWriteSize = 2

// Audio is a chained hash of the writes to the audio registers. It
// implements the memory.AudioSink interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: sha1.Size,
	}
}

// Hash implements the digest.Digest interface. Outstanding data is flushed
// before the hash is returned.
func (dig *Audio) Hash() string {
	dig.Flush()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = sha1.Size
}

// WriteAudio implements the memory.AudioSink interface.
func (dig *Audio) WriteAudio(address uint16, data uint8) {
	if dig.bufferCt+audioWriteSize > len(dig.buffer) {
		dig.Flush()
	}
	dig.buffer[dig.bufferCt] = uint8(address)
	dig.buffer[dig.bufferCt+1] = data
	dig.bufferCt += audioWriteSize
}

// Flush the buffered writes into the hash.
func (dig *Audio) Flush() {
	if dig.bufferCt == sha1.Size {
		return
	}
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = sha1.Size
}
