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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/framebuffer"
	"github.com/jetsetilly/mdoutput/test"
)

func TestFormats(t *testing.T) {
	for _, depth := range []int{8, 15, 16, 24, 32} {
		f, err := framebuffer.NewFormat(depth)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, f.Depth, depth)
	}

	_, err := framebuffer.NewFormat(12)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.UnsupportedDepth))
}

func TestPacking(t *testing.T) {
	f, _ := framebuffer.NewFormat(16)
	test.ExpectEquality(t, f.Pack(0xff, 0xff, 0xff), uint32(0xffff))
	test.ExpectEquality(t, f.Pack(0xff, 0x00, 0x00), uint32(0xf800))
	test.ExpectEquality(t, f.Pack(0x00, 0xff, 0x00), uint32(0x07e0))
	test.ExpectEquality(t, f.Pack(0x00, 0x00, 0xff), uint32(0x001f))

	f, _ = framebuffer.NewFormat(15)
	test.ExpectEquality(t, f.Pack(0xff, 0xff, 0xff), uint32(0x7fff))
	test.ExpectEquality(t, f.Pack(0xff, 0x00, 0x00), uint32(0x7c00))

	f, _ = framebuffer.NewFormat(32)
	test.ExpectEquality(t, f.Pack(0x12, 0x34, 0x56), uint32(0x123456))

	// unpacking loses the bits that can't be stored
	f, _ = framebuffer.NewFormat(16)
	r, g, b := f.Unpack(f.Pack(0x87, 0x65, 0x43))
	test.ExpectEquality(t, r, uint8(0x80))
	test.ExpectEquality(t, g, uint8(0x64))
	test.ExpectEquality(t, b, uint8(0x40))

	f, _ = framebuffer.NewFormat(8)
	r, g, b = f.Unpack(f.Pack(0xff, 0xff, 0xff))
	test.ExpectEquality(t, r, uint8(0xe0))
	test.ExpectEquality(t, g, uint8(0xe0))
	test.ExpectEquality(t, b, uint8(0xc0))
}

func TestPutGet(t *testing.T) {
	f, _ := framebuffer.NewFormat(24)
	p := make([]byte, 4)
	f.Put(p, 0x123456)
	test.ExpectEquality(t, string(p), string([]byte{0x56, 0x34, 0x12, 0x00}))
	test.ExpectEquality(t, f.Get(p), uint32(0x123456))
}

func TestFrame(t *testing.T) {
	f, _ := framebuffer.NewFormat(16)
	fr := framebuffer.NewFrame(f, 320, 224)

	test.ExpectEquality(t, fr.Pitch, 336*2)
	test.ExpectEquality(t, len(fr.Pix), 336*2*240)
	test.ExpectEquality(t, fr.Offset, 336*2*8+16)
	test.ExpectSuccess(t, fr.Matches(f, 320, 224))
	test.ExpectFailure(t, fr.Matches(f, 320, 240))

	fr.SetPixel(1, 2, 0xabcd)
	test.ExpectEquality(t, fr.Pix[fr.Offset+2*fr.Pitch+2], uint8(0xcd))
	test.ExpectEquality(t, fr.Pix[fr.Offset+2*fr.Pitch+3], uint8(0xab))
	test.ExpectEquality(t, len(fr.Line(0)), 640)

	img := framebuffer.ToImage(f, fr.Visible(), fr.Width, fr.Height, fr.Pitch)
	test.ExpectEquality(t, img.Bounds().Dx(), 320)
	c := img.RGBAAt(1, 2)
	r, g, b := f.Unpack(0xabcd)
	test.ExpectEquality(t, c.R, r)
	test.ExpectEquality(t, c.G, g)
	test.ExpectEquality(t, c.B, b)

	fr.Clear()
	test.ExpectEquality(t, fr.Pix[fr.Offset+2*fr.Pitch+2], uint8(0))
}

func TestXRGBToRGBA(t *testing.T) {
	format, err := framebuffer.NewFormat(32)
	test.DemandSuccess(t, err)

	src := make([]byte, format.Bpp*2)
	format.Put(src, format.Pack(0x10, 0x20, 0x30))
	format.Put(src[format.Bpp:], format.Pack(0xff, 0x00, 0x80))

	dst := make([]byte, len(src))
	framebuffer.XRGBToRGBA(dst, src)

	test.ExpectEquality(t, string(dst), string([]byte{0x10, 0x20, 0x30, 0xff, 0xff, 0x00, 0x80, 0xff}))
}
