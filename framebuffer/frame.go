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
	"image"
	"image/color"
)

// the border surrounding the visible area of a Frame
const (
	BorderLines  = 8
	BorderPixels = 8
)

// Frame is the region the emulation draws into.
type Frame struct {
	Format Format

	// dimensions of the visible area
	Width  int
	Height int

	// bytes per line, including the border
	Pitch int

	// the entire frame, including the border
	Pix []byte

	// byte offset of the first visible pixel
	Offset int
}

// NewFrame allocates a Frame with a visible area of the specified size.
func NewFrame(format Format, width, height int) *Frame {
	w := width + BorderPixels*2
	h := height + BorderLines*2
	pitch := w * format.Bpp

	return &Frame{
		Format: format,
		Width:  width,
		Height: height,
		Pitch:  pitch,
		Pix:    make([]byte, pitch*h),

		// the visible area always starts 16 bytes into the line regardless
		// of depth. this matches the offset used by the emulation's scanline
		// renderer
		Offset: pitch*BorderLines + 16,
	}
}

// Matches returns true if the Frame has the Format and visible dimensions
// specified.
func (f *Frame) Matches(format Format, width, height int) bool {
	return f != nil && f.Format == format && f.Width == width && f.Height == height
}

// Visible returns the slice of Pix starting at the first visible pixel.
func (f *Frame) Visible() []byte {
	return f.Pix[f.Offset:]
}

// Line returns the visible pixels of line y.
func (f *Frame) Line(y int) []byte {
	i := f.Offset + y*f.Pitch
	return f.Pix[i : i+f.Width*f.Format.Bpp]
}

// SetPixel sets the pixel at x, y in the visible area.
func (f *Frame) SetPixel(x, y int, v uint32) {
	f.Format.Put(f.Line(y)[x*f.Format.Bpp:], v)
}

// Clear sets the entire frame to zero.
func (f *Frame) Clear() {
	clear(f.Pix)
}

// ToImage converts an area of pixel data in the specified format to an RGBA
// image. The data should start at the first pixel of the area.
func ToImage(format Format, data []byte, width, height, pitch int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		l := data[y*pitch:]
		for x := 0; x < width; x++ {
			r, g, b := format.Unpack(format.Get(l[x*format.Bpp:]))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// XRGBToRGBA converts 32 bit pixels, stored as little-endian XRGB, to RGBA
// with full opacity. The destination must be at least as long as the source.
func XRGBToRGBA(dst []byte, src []byte) {
	for i := 0; i+4 <= len(src); i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = 0xff
	}
}
