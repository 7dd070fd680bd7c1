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

import (
	"github.com/jetsetilly/mdoutput/logger"
)

type scaleData struct {
	x int
	y int
}

// scale magnifies the input by integer factors. the factors come from the
// Stack configuration and are reduced until the result fits in the output
func (s *Stack) scale(in, out *Descriptor) {
	if out.failed {
		s.off(in, out)
		return
	}

	if !out.updated {
		if !s.initScale(in, out) {
			out.failed = true
			s.off(in, out)
			return
		}
	}

	data := out.data.(scaleData)
	bpp := s.format.Bpp
	n := in.Width * data.x * bpp

	dst := 0
	for y := range in.Height {
		row := out.Buf[dst : dst+n]
		scaleRow(row, in.Buf[y*in.Pitch:], in.Width, bpp, data.x)
		dst += out.Pitch

		for range data.y - 1 {
			copy(out.Buf[dst:dst+n], row)
			dst += out.Pitch
		}
	}
}

// initScale prepares the output descriptor. returns false if the input can not
// be scaled
func (s *Stack) initScale(in, out *Descriptor) bool {
	x := max(s.config.XScale, 0)
	y := max(s.config.YScale, 0)

	for x > 0 && in.Width*x > out.Width {
		x--
	}
	for y > 0 && in.Height*y > out.Height {
		y--
	}

	if x == 0 || y == 0 {
		logger.Logf(logger.Allow, "filters", "scale: cannot rescale by %dx%d", x, y)
		return false
	}

	// scaling by one is the same as the off filter
	if x == 1 && y == 1 {
		return false
	}

	if s.format.Bpp < 1 || s.format.Bpp > 4 {
		logger.Logf(logger.Allow, "filters", "scale: %d bytes per pixel not supported", s.format.Bpp)
		return false
	}

	out.center(in.Width*x, in.Height*y, s.format.Bpp)
	out.data = scaleData{x: x, y: y}
	out.updated = true

	return true
}

// scaleRow copies width pixels from src to dst, repeating each pixel factor
// times
func scaleRow(dst []byte, src []byte, width int, bpp int, factor int) {
	o := 0
	switch bpp {
	case 1:
		for x := range width {
			v := src[x]
			for range factor {
				dst[o] = v
				o++
			}
		}
	case 2:
		for x := range width {
			v0, v1 := src[x*2], src[x*2+1]
			for range factor {
				dst[o] = v0
				dst[o+1] = v1
				o += 2
			}
		}
	case 3:
		for x := range width {
			v0, v1, v2 := src[x*3], src[x*3+1], src[x*3+2]
			for range factor {
				dst[o] = v0
				dst[o+1] = v1
				dst[o+2] = v2
				o += 3
			}
		}
	case 4:
		for x := range width {
			v0, v1, v2, v3 := src[x*4], src[x*4+1], src[x*4+2], src[x*4+3]
			for range factor {
				dst[o] = v0
				dst[o+1] = v1
				dst[o+2] = v2
				dst[o+3] = v3
				o += 4
			}
		}
	}
}
