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

// CappedWriter is an implementation of io.Writer that keeps the first bytes
// written to it and discards everything after it is full. Useful for checking
// the start of output that might otherwise grow without limit, such as a log
// echoed while a session runs.
//
// It is safe to write to a CappedWriter from more than one goroutine.
type CappedWriter struct {
	crit   sync.Mutex
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (c *CappedWriter) String() string {
	c.crit.Lock()
	defer c.crit.Unlock()
	return string(c.buffer)
}

// Full returns true if no more bytes will be kept.
func (c *CappedWriter) Full() bool {
	c.crit.Lock()
	defer c.crit.Unlock()
	return len(c.buffer) == c.size
}

// Reset empties the CappedWriter.
func (c *CappedWriter) Reset() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.buffer = c.buffer[:0]
}

// Write implements io.Writer. The number of bytes returned is the number
// kept.
func (c *CappedWriter) Write(p []byte) (int, error) {
	c.crit.Lock()
	defer c.crit.Unlock()

	n := min(len(p), c.size-len(c.buffer))
	c.buffer = append(c.buffer, p[:n]...)
	return n, nil
}
