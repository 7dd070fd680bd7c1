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

package filters

// Allocator provides memory for the Stack's scratch buffers. Free is called
// with every buffer the Stack no longer uses.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte)
}

// HeapAllocator allocates scratch buffers from the Go heap.
type HeapAllocator struct{}

// Alloc implements the Allocator interface.
func (HeapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Free implements the Allocator interface.
func (HeapAllocator) Free(_ []byte) {
}

// LimitedAllocator allocates from the heap but refuses any allocation that
// would take the live total over the limit.
type LimitedAllocator struct {
	Limit     int
	allocated int
}

// Alloc implements the Allocator interface.
func (a *LimitedAllocator) Alloc(size int) ([]byte, error) {
	if a.allocated+size > a.Limit {
		return nil, errOutOfMemory
	}
	a.allocated += size
	return make([]byte, size), nil
}

// Free implements the Allocator interface.
func (a *LimitedAllocator) Free(b []byte) {
	a.allocated = max(0, a.allocated-len(b))
}

// Allocated returns the number of bytes currently allocated.
func (a *LimitedAllocator) Allocated() int {
	return a.allocated
}

type outOfMemory struct{}

func (outOfMemory) Error() string {
	return "out of memory"
}

var errOutOfMemory = outOfMemory{}
