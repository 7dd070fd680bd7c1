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

package ringbuffer

// Ring is a fixed capacity circular buffer of bytes.
type Ring struct {
	data []byte

	// index of the next byte to be read
	i int

	// number of unread bytes
	s int
}

// NewRing is the preferred method of initialisation for the Ring type. A
// capacity of zero or less creates a Ring that stores nothing.
func NewRing(capacity int) *Ring {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring{
		data: make([]byte, capacity),
	}
}

// Cap returns the capacity of the ring in bytes.
func (r *Ring) Cap() int {
	return len(r.data)
}

// Len returns the number of unread bytes.
func (r *Ring) Len() int {
	return r.s
}

// Free returns the number of bytes that can be written before unread data is
// overwritten.
func (r *Ring) Free() int {
	return len(r.data) - r.s
}

// ReadCursor returns the index of the next byte to be read.
func (r *Ring) ReadCursor() int {
	if len(r.data) == 0 {
		return 0
	}
	return r.i
}

// WriteCursor returns the index at which the next byte will be written.
func (r *Ring) WriteCursor() int {
	if len(r.data) == 0 {
		return 0
	}
	return (r.i + r.s) % len(r.data)
}

// Reset discards all unread data.
func (r *Ring) Reset() {
	r.i = 0
	r.s = 0
}

// Write copies p into the ring. If p is larger than the capacity of the ring
// then only the trailing bytes of p are kept. If there is not enough free
// space then the oldest unread bytes are overwritten.
//
// Returns the number of bytes stored, which is min(len(p), Cap()).
func (r *Ring) Write(p []byte) int {
	size := len(r.data)
	if size == 0 || len(p) == 0 {
		return 0
	}

	if len(p) > size {
		p = p[len(p)-size:]
	}

	n := len(p)
	free := size - r.s
	j := (r.i + r.s) % size

	if n > free {
		// oldest data is lost
		r.i = (r.i + (n - free)) % size
		r.s = size
	} else {
		r.s += n
	}

	c := copy(r.data[j:], p)
	copy(r.data, p[c:])

	return n
}

// Read copies up to len(p) unread bytes into p, returning the number of bytes
// copied. The remainder of p is left untouched.
func (r *Ring) Read(p []byte) int {
	n := len(p)
	if n > r.s {
		n = r.s
	}
	if n == 0 {
		return 0
	}

	c := copy(p[:n], r.data[r.i:])
	copy(p[c:n], r.data)

	r.i = (r.i + n) % len(r.data)
	r.s -= n

	return n
}
