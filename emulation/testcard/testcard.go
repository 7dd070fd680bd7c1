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

// Package testcard is an implementation of the emulation.Engine interface
// that draws a test card and produces a test tone. It is used when there is
// no emulation attached and in tests.
package testcard

import (
	"math"

	"github.com/jetsetilly/mdoutput/emulation"
	"github.com/jetsetilly/mdoutput/framebuffer"
	"github.com/jetsetilly/mdoutput/soundsource"
)

// the colours of the bars, left to right
var bars = [...][3]uint8{
	{0xff, 0xff, 0xff},
	{0xff, 0xff, 0x00},
	{0x00, 0xff, 0xff},
	{0x00, 0xff, 0x00},
	{0xff, 0x00, 0xff},
	{0xff, 0x00, 0x00},
	{0x00, 0x00, 0xff},
	{0x00, 0x00, 0x00},
}

// size of the marker that moves across the screen every frame
const markerSize = 16

// the frequency of the test tone
const toneHz = 440

// TestCard implements the emulation.Engine interface.
type TestCard struct {
	video emulation.Video

	// number of frames drawn
	frame int

	// pixel values for the bars and the marker. recalculated when the
	// framebuffer format changes
	format framebuffer.Format
	pixels [len(bars)]uint32
	marker uint32

	// phase of the test tone in samples. the tone is used if source is nil
	phase  int
	rate   int
	source *soundsource.Source
}

// NewTestCard is the preferred method of initialisation for the TestCard type.
func NewTestCard(video emulation.Video) (*TestCard, error) {
	if err := video.Validate(); err != nil {
		return nil, err
	}
	return &TestCard{video: video}, nil
}

// SetSource changes the sound played by the TestCard from the test tone to
// the Source. A nil Source returns to the test tone.
func (tc *TestCard) SetSource(src *soundsource.Source) {
	tc.source = src
}

// SetVideo changes the video mode of the TestCard. The new mode is returned by
// Video() immediately.
func (tc *TestCard) SetVideo(video emulation.Video) error {
	if err := video.Validate(); err != nil {
		return err
	}
	tc.video = video
	return nil
}

// Video implements the emulation.Engine interface.
func (tc *TestCard) Video() emulation.Video {
	return tc.video
}

// FrameNum returns the number of frames drawn.
func (tc *TestCard) FrameNum() int {
	return tc.frame
}

// Frame implements the emulation.Engine interface.
func (tc *TestCard) Frame(fb *framebuffer.Frame, samples []int16) error {
	if fb.Format != tc.format {
		tc.format = fb.Format
		for i, c := range bars {
			tc.pixels[i] = tc.format.Pack(c[0], c[1], c[2])
		}
		tc.marker = tc.format.Pack(0x80, 0x80, 0x80)
	}

	// the framebuffer might be smaller than the video mode if the
	// presentation hasn't caught up with a change of mode yet
	width := min(fb.Width, tc.video.Width)
	height := min(fb.Height, tc.video.Height)

	for y := range height {
		for x := range width {
			fb.SetPixel(x, y, tc.pixels[x*len(bars)/width])
		}
	}

	// the marker moves one pixel every frame and wraps at the edge of the
	// screen
	if width > markerSize && height > markerSize {
		mx := tc.frame % (width - markerSize)
		my := (height - markerSize) / 2
		for y := range markerSize {
			for x := range markerSize {
				fb.SetPixel(mx+x, my+y, tc.marker)
			}
		}
	}

	tc.frame++

	if samples != nil {
		if tc.source != nil {
			tc.source.Fill(samples)
		} else {
			tc.tone(samples)
		}
	}

	return nil
}

// SetRate sets the sample rate used to generate the test tone.
func (tc *TestCard) SetRate(rate int) {
	tc.rate = rate
	tc.phase = 0
}

// tone fills samples with a sine wave, the same value in both channels
func (tc *TestCard) tone(samples []int16) {
	if tc.rate <= 0 {
		clear(samples)
		return
	}

	for i := 0; i+1 < len(samples); i += 2 {
		v := int16(math.Sin(2*math.Pi*toneHz*float64(tc.phase)/float64(tc.rate)) * math.MaxInt16 / 4)
		samples[i] = v
		samples[i+1] = v
		tc.phase++
		if tc.phase >= tc.rate {
			tc.phase = 0
		}
	}
}
