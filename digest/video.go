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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/display"
	"github.com/jetsetilly/mdoutput/framebuffer"
)

// Video is an implementation of the display.Surface interface. It wraps
// another Surface and updates the digest on every call to Present().
type Video struct {
	display.Surface

	digest [sha1.Size]byte

	// the previous digest followed by the visible pixels of the surface.
	// the padding at the end of each row of the surface is not included
	pixels []byte

	// the number of frames included in the digest
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(srf display.Surface) *Video {
	return &Video{Surface: srf}
}

// Hash implements digest.Digest interface
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Present implements display.Surface interface
func (dig *Video) Present() error {
	if err := dig.Surface.Lock(); err != nil {
		return curated.Errorf(VideoDigest, err)
	}

	format, err := framebuffer.NewFormat(dig.Surface.Depth())
	if err != nil {
		dig.Surface.Unlock()
		return curated.Errorf(VideoDigest, err)
	}

	r := dig.Surface.Region()
	rowLen := r.Width * format.Bpp

	l := len(dig.digest) + rowLen*r.Height
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the pixel data
	copy(dig.pixels, dig.digest[:])

	i := len(dig.digest)
	for y := range r.Height {
		copy(dig.pixels[i:i+rowLen], r.Buf[y*r.Pitch:])
		i += rowLen
	}

	dig.Surface.Unlock()

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return dig.Surface.Present()
}
