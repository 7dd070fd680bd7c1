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

package sound

import (
	"fmt"

	"github.com/jetsetilly/mdoutput/curated"
)

// the sample format is fixed at signed 16 bit stereo.
const (
	Channels       = 2
	BytesPerSample = 2

	// the number of bytes in one stereo frame
	FrameSize = Channels * BytesPerSample

	// the largest device buffer that can be requested. SDL holds the value
	// in 16 bits
	MaxDeviceSamples = 65535
)

// Spec describes the audio device and the emulation's rate of sample
// production. The capacity of the Bridge is derived from it.
type Spec struct {
	// output sample rate in samples per second
	Rate int

	// size of the device's own buffer, in samples
	DeviceSamples int

	// number of frames worth of audio the Bridge should be able to hold in
	// addition to the device buffer
	Segments int

	// the rate at which the emulation produces frames
	Hz int
}

// SamplesPerFrame returns the number of stereo samples the emulation produces
// every frame.
func (s Spec) SamplesPerFrame() int {
	if s.Hz <= 0 {
		return 0
	}
	return s.Rate / s.Hz
}

// Capacity returns the size in bytes of the ring buffer required by the
// specification.
func (s Spec) Capacity() int {
	return (s.Segments*s.SamplesPerFrame() + s.DeviceSamples) * FrameSize
}

// Validate checks that the values in the Spec are usable.
func (s Spec) Validate() error {
	if s.Rate <= 0 {
		return curated.Errorf(InvalidSpec, "sample rate must be positive")
	}
	if s.Hz <= 0 || s.Hz > 1000 {
		return curated.Errorf(InvalidSpec, "frame rate must be between 1 and 1000")
	}
	if s.Segments < 0 {
		return curated.Errorf(InvalidSpec, "segments must not be negative")
	}
	if s.DeviceSamples < 0 {
		return curated.Errorf(InvalidSpec, "device samples must not be negative")
	}
	if s.DeviceSamples > MaxDeviceSamples {
		return curated.Errorf(InvalidSpec, fmt.Sprintf("device samples must not be more than %d", MaxDeviceSamples))
	}
	if s.SamplesPerFrame() == 0 {
		return curated.Errorf(InvalidSpec, "sample rate is less than frame rate")
	}
	return nil
}
