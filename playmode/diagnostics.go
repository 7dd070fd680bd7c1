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

package playmode

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mdoutput/emulation"
	"github.com/jetsetilly/mdoutput/sound"
)

// Diagnostics is a snapshot of the state of the presentation layer.
type Diagnostics struct {
	State emulation.State
	Video emulation.Video

	// number of frames presented
	Frames int

	// size and pixel format of the display
	Width  int
	Height int
	Format string

	// one line per stage of the filter stack
	Stack string

	// number of scratch buffers allocated by the filter stack
	Scratch int

	// sound bridge. cursors are measured in stereo samples
	Sound       bool
	Rate        int
	ReadCursor  int
	WriteCursor int
	Buffered    int
	Underruns   int
}

// Diagnostics returns a snapshot of the state of the Playmode.
func (pm *Playmode) Diagnostics() Diagnostics {
	d := Diagnostics{
		State:   pm.state,
		Video:   pm.drv.Video(),
		Frames:  pm.drv.Frames(),
		Format:  pm.drv.Format().String(),
		Stack:   pm.drv.Stack().String(),
		Scratch: pm.drv.Stack().Scratch(),
	}
	d.Width, d.Height = pm.drv.Size()

	if pm.device != nil && pm.bridge.IsOpen() {
		d.Sound = true
		d.Rate = pm.bridge.Spec().Rate
		d.ReadCursor = pm.bridge.ReadCursor()
		d.WriteCursor = pm.bridge.WriteCursor()
		d.Buffered = pm.bridge.Buffered() / sound.FrameSize
		d.Underruns = pm.bridge.Underruns()
	}

	return d
}

func (d Diagnostics) String() string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("state: %s\n", d.State))
	s.WriteString(fmt.Sprintf("video: %s\n", d.Video))
	s.WriteString(fmt.Sprintf("display: %dx%d %s\n", d.Width, d.Height, d.Format))
	s.WriteString(fmt.Sprintf("frames: %d\n", d.Frames))
	s.WriteString(fmt.Sprintf("filters (%d scratch):\n", d.Scratch))
	s.WriteString(d.Stack)

	if d.Sound {
		s.WriteString(fmt.Sprintf("sound: %dHz read %d write %d buffered %d underruns %d\n",
			d.Rate, d.ReadCursor, d.WriteCursor, d.Buffered, d.Underruns))
	} else {
		s.WriteString("sound: disabled\n")
	}

	return s.String()
}
