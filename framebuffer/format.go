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

package framebuffer

import (
	"fmt"

	"github.com/jetsetilly/mdoutput/curated"
)

// Sentinal error patterns
const (
	UnsupportedDepth = "framebuffer: unsupported depth: %d"
)

// Format describes how a pixel is stored.
type Format struct {
	// bits per pixel. note that 15 bit pixels are stored in two bytes
	Depth int

	// bytes per pixel
	Bpp int
}

func (f Format) String() string {
	return fmt.Sprintf("%dbpp (%d bytes)", f.Depth, f.Bpp)
}

// NewFormat returns the Format for the specified depth.
func NewFormat(depth int) (Format, error) {
	switch depth {
	case 8:
		return Format{Depth: 8, Bpp: 1}, nil
	case 15:
		return Format{Depth: 15, Bpp: 2}, nil
	case 16:
		return Format{Depth: 16, Bpp: 2}, nil
	case 24:
		return Format{Depth: 24, Bpp: 3}, nil
	case 32:
		return Format{Depth: 32, Bpp: 4}, nil
	}
	return Format{}, curated.Errorf(UnsupportedDepth, depth)
}

// Pack the colour components into a pixel value for the Format.
func (f Format) Pack(r, g, b uint8) uint32 {
	switch f.Depth {
	case 8:
		return uint32(r&0xe0) | uint32(g&0xe0)>>3 | uint32(b)>>6
	case 15:
		return uint32(r&0xf8)<<7 | uint32(g&0xf8)<<2 | uint32(b)>>3
	case 16:
		return uint32(r&0xf8)<<8 | uint32(g&0xfc)<<3 | uint32(b)>>3
	}
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack a pixel value into its colour components. The lower bits of each
// component are left clear for depths where they are not stored.
func (f Format) Unpack(v uint32) (r, g, b uint8) {
	switch f.Depth {
	case 8:
		return uint8(v & 0xe0), uint8(v<<3) & 0xe0, uint8(v<<6) & 0xc0
	case 15:
		return uint8(v>>7) & 0xf8, uint8(v>>2) & 0xf8, uint8(v<<3) & 0xf8
	case 16:
		return uint8(v>>8) & 0xf8, uint8(v>>3) & 0xfc, uint8(v<<3) & 0xf8
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Put stores the pixel value at the start of p.
func (f Format) Put(p []byte, v uint32) {
	switch f.Bpp {
	case 1:
		p[0] = uint8(v)
	case 2:
		_ = p[1]
		p[0] = uint8(v)
		p[1] = uint8(v >> 8)
	case 3:
		_ = p[2]
		p[0] = uint8(v)
		p[1] = uint8(v >> 8)
		p[2] = uint8(v >> 16)
	case 4:
		_ = p[3]
		p[0] = uint8(v)
		p[1] = uint8(v >> 8)
		p[2] = uint8(v >> 16)
		p[3] = uint8(v >> 24)
	}
}

// Get returns the pixel value stored at the start of p.
func (f Format) Get(p []byte) uint32 {
	switch f.Bpp {
	case 1:
		return uint32(p[0])
	case 2:
		return uint32(p[0]) | uint32(p[1])<<8
	case 3:
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	case 4:
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
	}
	return 0
}
