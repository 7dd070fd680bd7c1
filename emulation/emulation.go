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

package emulation

import (
	"fmt"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/framebuffer"
)

// Sentinal error patterns
const (
	InvalidVideo = "emulation: invalid video: %v"
)

// Video describes the frames produced by the emulation.
type Video struct {
	Width  int
	Height int

	// frames per second
	Hz int

	PAL bool
}

// The two standard video modes. The width is the same for both, PAL has more
// visible lines.
var (
	NTSC = Video{Width: 320, Height: 224, Hz: 60}
	PAL  = Video{Width: 320, Height: 240, Hz: 50, PAL: true}
)

func (v Video) String() string {
	region := "NTSC"
	if v.PAL {
		region = "PAL"
	}
	return fmt.Sprintf("%s %dx%d@%dHz", region, v.Width, v.Height, v.Hz)
}

// Validate checks that the Video values are usable.
func (v Video) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return curated.Errorf(InvalidVideo, fmt.Sprintf("bad dimensions %dx%d", v.Width, v.Height))
	}
	if v.Hz < 1 || v.Hz > 1000 {
		return curated.Errorf(InvalidVideo, fmt.Sprintf("bad frame rate %d", v.Hz))
	}
	return nil
}

// Engine is a minimal abstraction of the emulation proper.
//
// Frame() draws exactly one frame into the visible area of the framebuffer
// and fills the samples slice with one frame of interleaved stereo audio. The
// samples slice may be nil if sound is disabled.
//
// Video() returns the current video mode. The value returned by Video() may
// change after a call to Frame(), in which case the presentation must be
// reinitialised before the next frame.
type Engine interface {
	Frame(fb *framebuffer.Frame, samples []int16) error
	Video() Video
}

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Values are ordered so that order comparisons are meaningful. For example,
// Running is "greater than" Paused.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "start"
	case Initialising:
		return "initialising"
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "unknown"
}
