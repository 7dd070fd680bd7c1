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

package soundsource

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/logger"
)

// Sentinal error patterns
const (
	UnsupportedFile = "soundsource: unsupported file type: %s"
	DecodeError     = "soundsource: %s: %v"
)

// Source is a decoded audio file.
type Source struct {
	Filename string

	// samples per second
	Rate int

	// interleaved stereo samples
	Data []int16

	// the next stereo frame to be returned by Fill()
	cursor int
}

// Load the file at path. The type of file is decided by the file extension.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filepath.Base(path), err)
	}
	defer f.Close()

	src := &Source{
		Filename: path,
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		err = src.decodeWAV(f)
	case ".mp3":
		err = src.decodeMP3(f)
	case ".ogg":
		err = src.decodeOgg(f)
	default:
		return nil, curated.Errorf(UnsupportedFile, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "soundsource", "%s: %d frames at %dHz", filepath.Base(path), src.Frames(), src.Rate)

	return src, nil
}

// Frames returns the number of stereo frames in the Source.
func (src *Source) Frames() int {
	return len(src.Data) / 2
}

// Fill the samples slice with interleaved stereo data, looping back to the
// start of the Source as required. An empty Source fills the slice with
// silence.
func (src *Source) Fill(samples []int16) {
	if len(src.Data) == 0 {
		clear(samples)
		return
	}

	i := 0
	for i < len(samples) {
		n := copy(samples[i:], src.Data[src.cursor*2:])
		i += n
		src.cursor += n / 2
		if src.cursor >= src.Frames() {
			src.cursor = 0
		}
	}
}

// Rewind to the start of the Source.
func (src *Source) Rewind() {
	src.cursor = 0
}

// stereo returns an interleaved stereo sample for channel n of a frame,
// duplicating the first channel of mono sources
func stereo(frame []int16, channels int) (int16, int16) {
	if channels == 1 {
		return frame[0], frame[0]
	}
	return frame[0], frame[1]
}
