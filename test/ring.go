// This file is part of mdoutput.
//
// mdoutput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdoutput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdoutput.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"sync"
)

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it. Useful as the echo target of the logger when
// only the tail of the log is of interest.
//
// It is safe to write to a RingWriter from more than one goroutine.
type RingWriter struct {
	crit   sync.Mutex
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, 0, size*2),
	}, nil
}

// String returns the retained bytes, oldest first.
func (r *RingWriter) String() string {
	r.crit.Lock()
	defer r.crit.Unlock()
	return string(r.buffer)
}

// Reset empties the RingWriter.
func (r *RingWriter) Reset() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.buffer = r.buffer[:0]
}

// Write implements io.Writer. The number of bytes written is always the length
// of p even if not all of them are retained.
func (r *RingWriter) Write(p []byte) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	if len(p) >= r.size {
		r.buffer = append(r.buffer[:0], p[len(p)-r.size:]...)
		return len(p), nil
	}

	// the buffer has room for twice the size so appending never reallocates.
	// the oldest bytes are dropped by moving the tail to the front
	r.buffer = append(r.buffer, p...)
	if len(r.buffer) > r.size {
		n := copy(r.buffer, r.buffer[len(r.buffer)-r.size:])
		r.buffer = r.buffer[:n]
	}

	return len(p), nil
}
