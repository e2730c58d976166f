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

package test

import (
	"fmt"
	"strings"
)

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it.
type RingWriter struct {
	buffer  []byte
	size    int
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, size),
	}, nil
}

func (r *RingWriter) String() string {
	var s strings.Builder
	if r.wrapped {
		s.Write(r.buffer[r.cursor:])
	}
	s.Write(r.buffer[:r.cursor])
	return s.String()
}

// Reset empties the ring writer's buffer
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.wrapped = false
}

// Write implements io.Writer
func (r *RingWriter) Write(p []byte) (n int, err error) {
	n = len(p)

	// only the tail of an oversized write can be kept
	if len(p) > r.size {
		p = p[len(p)-r.size:]
		r.cursor = 0
		r.wrapped = false
	}

	l := r.size - r.cursor
	copy(r.buffer[r.cursor:], p)
	if len(p) >= l {
		r.wrapped = true
		copy(r.buffer, p[l:])
	}

	r.cursor = (r.cursor + len(p)) % r.size

	return n, nil
}
