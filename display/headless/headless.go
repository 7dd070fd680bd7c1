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

// Package headless implements the display.Surface interface in memory. It is
// useful for testing and for running without a display.
package headless

import (
	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/filters"
)

// Sentinal error patterns
const (
	ResizeError = "headless: resize: %v"
	LockError   = "headless: lock: %v"
)

// Surface implements the display.Surface interface.
type Surface struct {
	width  int
	height int
	depth  int
	pitch  int
	pix    []byte

	// the surface has been locked
	locked bool

	// maximum size of the surface in bytes. a Resize() requiring more than
	// this will fail. a value of zero means there is no limit
	Limit int

	// the number of times Present() has been called
	Presented int
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface() *Surface {
	return &Surface{}
}

// Resize implements the display.Surface interface. Depths of 8, 15, 16, 24
// and 32 bits are accepted. Any other depth is replaced with 16 bits.
func (srf *Surface) Resize(width, height, depth int) error {
	if srf.locked {
		return curated.Errorf(ResizeError, "surface is locked")
	}
	if width <= 0 || height <= 0 {
		return curated.Errorf(ResizeError, "bad dimensions")
	}

	var bpp int
	switch depth {
	case 8:
		bpp = 1
	case 15, 16:
		bpp = 2
	case 24:
		bpp = 3
	case 32:
		bpp = 4
	default:
		depth = 16
		bpp = 2
	}

	// pitch is rounded up to a multiple of four in the same way as most
	// hardware surfaces
	pitch := (width*bpp + 3) &^ 3

	if srf.Limit > 0 && pitch*height > srf.Limit {
		return curated.Errorf(ResizeError, "not enough memory")
	}

	srf.width = width
	srf.height = height
	srf.depth = depth
	srf.pitch = pitch
	srf.pix = make([]byte, pitch*height)

	return nil
}

// Region implements the display.Surface interface.
func (srf *Surface) Region() filters.Region {
	return filters.Region{
		Buf:    srf.pix,
		Width:  srf.width,
		Height: srf.height,
		Pitch:  srf.pitch,
	}
}

// Depth implements the display.Surface interface. 15 bit surfaces report as
// 16 bit.
func (srf *Surface) Depth() int {
	if srf.depth == 15 {
		return 16
	}
	return srf.depth
}

// Lock implements the display.Surface interface. Locking a surface that is
// already locked is an error.
func (srf *Surface) Lock() error {
	if srf.locked {
		return curated.Errorf(LockError, "already locked")
	}
	srf.locked = true
	return nil
}

// Unlock implements the display.Surface interface.
func (srf *Surface) Unlock() {
	srf.locked = false
}

// IsLocked returns true if the surface is currently locked.
func (srf *Surface) IsLocked() bool {
	return srf.locked
}

// Present implements the display.Surface interface.
func (srf *Surface) Present() error {
	if srf.locked {
		return curated.Errorf(LockError, "present while locked")
	}
	srf.Presented++
	return nil
}
