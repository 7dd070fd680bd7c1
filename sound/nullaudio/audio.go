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

// Package nullaudio consumes the contents of a sound.Bridge at the rate a
// real device would, discarding the data. Useful for headless operation where
// the Bridge must still be drained.
package nullaudio

import (
	"sync"
	"time"

	"github.com/jetsetilly/mdoutput/sound"
)

// Audio discards sound at the device rate
type Audio struct {
	bridge *sound.Bridge

	crit sync.Mutex
	spec sound.Spec

	quit chan bool
	done chan bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(bridge *sound.Bridge, requested sound.Spec) (*Audio, error) {
	if err := bridge.Open(requested); err != nil {
		return nil, err
	}

	aud := &Audio{
		bridge: bridge,
		spec:   requested,
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	samples := requested.DeviceSamples
	if samples == 0 {
		samples = requested.SamplesPerFrame()
	}

	go aud.drain(samples, time.Duration(samples)*time.Second/time.Duration(requested.Rate))

	return aud, nil
}

func (aud *Audio) drain(samples int, period time.Duration) {
	defer close(aud.done)

	buffer := make([]byte, samples*sound.FrameSize)

	tck := time.NewTicker(period)
	defer tck.Stop()

	for {
		select {
		case <-aud.quit:
			return
		case <-tck.C:
			_, _ = aud.bridge.Read(buffer)
		}
	}
}

// Spec implements the sound.Device interface
func (aud *Audio) Spec() sound.Spec {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	return aud.spec
}

// SetHz implements the sound.Device interface
func (aud *Audio) SetHz(hz int) error {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	spec := aud.spec
	spec.Hz = hz
	if err := aud.bridge.Open(spec); err != nil {
		return err
	}
	aud.spec = spec

	return nil
}

// Close implements the sound.Device interface
func (aud *Audio) Close() error {
	close(aud.quit)
	<-aud.done
	aud.bridge.Close()
	return nil
}
