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

// ratios are fixed point numbers with this many fractional bits
const ratioShift = 10

type stretchData struct {
	// the number of times each input column is repeated in the output
	h []int

	// the number of times each input row is repeated in the output. a value
	// of zero means the row is dropped
	v []int
}

// stretch resizes the input to fill the output by any ratio. if the Stack is
// configured to keep the aspect ratio then the output is filled on one axis
// only
func (s *Stack) stretch(in, out *Descriptor) {
	if out.failed {
		s.off(in, out)
		return
	}

	if !out.updated {
		if !s.initStretch(in, out) {
			out.failed = true
			s.off(in, out)
			return
		}
	}

	data := out.data.(stretchData)
	bpp := s.format.Bpp
	n := out.Width * bpp

	dst := 0
	for y := range in.Height {
		v := data.v[y]
		if v == 0 {
			continue
		}

		row := out.Buf[dst : dst+n]
		stretchRow(row, in.Buf[y*in.Pitch:], data.h, bpp)
		dst += out.Pitch

		for range v - 1 {
			copy(out.Buf[dst:dst+n], row)
			dst += out.Pitch
		}
	}
}

// initStretch prepares the output descriptor. returns false if the input can
// not be stretched
func (s *Stack) initStretch(in, out *Descriptor) bool {
	bpp := s.format.Bpp
	srcW := in.Width
	srcH := in.Height
	dstW := out.Width
	dstH := out.Height

	if srcW <= 0 || srcH <= 0 {
		logger.Logf(logger.Allow, "filters", "stretch: invalid input size: %dx%d", srcW, srcH)
		return false
	}

	if bpp < 1 || bpp > 4 {
		logger.Logf(logger.Allow, "filters", "stretch: %d bytes per pixel not supported", bpp)
		return false
	}

	if in.Pitch%bpp != 0 || out.Pitch%bpp != 0 {
		logger.Logf(logger.Allow, "filters", "stretch: pitch is not a multiple of pixel size (in: %d out: %d bpp: %d)", in.Pitch, out.Pitch, bpp)
		return false
	}

	if s.config.Aspect {
		w := (dstH * srcW) / srcH
		h := (dstW * srcH) / srcW
		if w >= dstW {
			w = dstW
			h = max(h, 1)
		} else {
			h = dstH
			w = max(w, 1)
		}
		dstW = w
		dstH = h
	}

	hRatio := (dstW << ratioShift) / srcW
	vRatio := (dstH << ratioShift) / srcH
	if hRatio == 0 || vRatio == 0 {
		logger.Logf(logger.Allow, "filters", "stretch: output too small: %dx%d", dstW, dstH)
		return false
	}

	data := stretchData{
		h: make([]int, srcW),
		v: make([]int, srcH),
	}

	for x := range dstW {
		sx := (x << ratioShift) / hRatio
		if sx < srcW {
			data.h[sx]++
		}
	}
	for y := range dstH {
		sy := (y << ratioShift) / vRatio
		if sy < srcH {
			data.v[sy]++
		}
	}

	out.center(dstW, dstH, bpp)
	out.data = data
	out.updated = true

	return true
}

// stretchRow copies pixels from src to dst, repeating each pixel the number of
// times given by the table. a count of zero drops the pixel
func stretchRow(dst []byte, src []byte, table []int, bpp int) {
	o := 0
	switch bpp {
	case 1:
		for x, r := range table {
			v := src[x]
			for range r {
				dst[o] = v
				o++
			}
		}
	case 2:
		for x, r := range table {
			v0, v1 := src[x*2], src[x*2+1]
			for range r {
				dst[o] = v0
				dst[o+1] = v1
				o += 2
			}
		}
	case 3:
		for x, r := range table {
			v0, v1, v2 := src[x*3], src[x*3+1], src[x*3+2]
			for range r {
				dst[o] = v0
				dst[o+1] = v1
				dst[o+2] = v2
				o += 3
			}
		}
	case 4:
		for x, r := range table {
			v0, v1, v2, v3 := src[x*4], src[x*4+1], src[x*4+2], src[x*4+3]
			for range r {
				dst[o] = v0
				dst[o+1] = v1
				dst[o+2] = v2
				dst[o+3] = v3
				o += 4
			}
		}
	}
}
