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

package ringbuffer_test

import (
	"testing"

	"github.com/jetsetilly/mdoutput/ringbuffer"
	"github.com/jetsetilly/mdoutput/test"
)

func TestRoundTrip(t *testing.T) {
	r := ringbuffer.NewRing(8)
	test.ExpectEquality(t, r.Cap(), 8)
	test.ExpectEquality(t, r.Len(), 0)

	n := r.Write([]byte{1, 2, 3, 4, 5})
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, r.Len(), 5)
	test.ExpectEquality(t, r.Free(), 3)

	p := make([]byte, 5)
	n = r.Read(p)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, string(p), string([]byte{1, 2, 3, 4, 5}))
	test.ExpectEquality(t, r.Len(), 0)
}

// writing more than the free space overwrites the oldest bytes
func TestOverflow(t *testing.T) {
	r := ringbuffer.NewRing(4)

	r.Write([]byte{1, 2, 3})
	r.Write([]byte{4, 5, 6})
	test.ExpectEquality(t, r.Len(), 4)

	p := make([]byte, 4)
	n := r.Read(p)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(p), string([]byte{3, 4, 5, 6}))
}

// writing more than the capacity keeps only the trailing bytes
func TestOversizedWrite(t *testing.T) {
	r := ringbuffer.NewRing(4)

	r.Write([]byte{0xff})
	n := r.Write([]byte{1, 2, 3, 4, 5, 6, 7})
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, r.Len(), 4)

	p := make([]byte, 4)
	r.Read(p)
	test.ExpectEquality(t, string(p), string([]byte{4, 5, 6, 7}))
}

// reading more than is available copies only what is there
func TestUnderrun(t *testing.T) {
	r := ringbuffer.NewRing(8)
	r.Write([]byte{1, 2})

	p := []byte{9, 9, 9, 9}
	n := r.Read(p)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, string(p), string([]byte{1, 2, 9, 9}))

	n = r.Read(p)
	test.ExpectEquality(t, n, 0)
}

// data that straddles the end of the storage is read back in order
func TestWrap(t *testing.T) {
	r := ringbuffer.NewRing(5)

	r.Write([]byte{1, 2, 3})
	p := make([]byte, 3)
	r.Read(p)
	test.ExpectEquality(t, r.ReadCursor(), 3)

	r.Write([]byte{4, 5, 6, 7})
	test.ExpectEquality(t, r.WriteCursor(), 2)

	p = make([]byte, 4)
	n := r.Read(p)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(p), string([]byte{4, 5, 6, 7}))
	test.ExpectEquality(t, r.ReadCursor(), 2)
}

func TestZeroCapacity(t *testing.T) {
	r := ringbuffer.NewRing(0)
	test.ExpectEquality(t, r.Write([]byte{1, 2, 3}), 0)
	test.ExpectEquality(t, r.Read(make([]byte, 3)), 0)
	test.ExpectEquality(t, r.ReadCursor(), 0)
	test.ExpectEquality(t, r.WriteCursor(), 0)
}

func TestReset(t *testing.T) {
	r := ringbuffer.NewRing(4)
	r.Write([]byte{1, 2, 3})
	r.Reset()
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectEquality(t, r.Free(), 4)
}
