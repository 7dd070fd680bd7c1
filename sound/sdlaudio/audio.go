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

// Package sdlaudio plays the contents of a sound.Bridge using an SDL audio
// device.
//
// SDL's queueing API is used rather than an audio callback. A goroutine keeps
// the device queue topped up from the Bridge at the rate the device consumes
// it.
package sdlaudio

import (
	"sync"
	"time"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/sound"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of device buffers we try to keep queued. more than this and we
// introduce unnecessary lag between the audio and video. less and we risk the
// device running dry between pumps
const queueDepth = 2

// Audio outputs sound using SDL
type Audio struct {
	bridge *sound.Bridge

	crit sync.Mutex
	id   sdl.AudioDeviceID
	spec sound.Spec

	// one device buffer's worth of data. reused every pump
	buffer []byte

	quit chan bool
	done chan bool
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// Bridge is opened with the specification obtained from the SDL device.
func NewAudio(bridge *sound.Bridge, requested sound.Spec) (*Audio, error) {
	if err := requested.Validate(); err != nil {
		return nil, err
	}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(sound.DeviceError, err)
	}

	desired := &sdl.AudioSpec{
		Freq:     int32(requested.Rate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: sound.Channels,
		Samples:  uint16(min(requested.DeviceSamples, sound.MaxDeviceSamples)),
	}

	var obtained sdl.AudioSpec

	id, err := sdl.OpenAudioDevice("", false, desired, &obtained, 0)
	if err != nil {
		return nil, curated.Errorf(sound.DeviceError, err)
	}

	spec := requested
	spec.Rate = int(obtained.Freq)
	spec.DeviceSamples = int(obtained.Samples)

	if err := bridge.Open(spec); err != nil {
		sdl.CloseAudioDevice(id)
		return nil, err
	}

	aud := &Audio{
		bridge: bridge,
		id:     id,
		spec:   spec,
		buffer: make([]byte, spec.DeviceSamples*sound.FrameSize),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", obtained.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "format: %d", obtained.Format)
	logger.Logf(logger.Allow, "sdlaudio", "channels: %d", obtained.Channels)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", obtained.Samples)

	// prime the device with silence so that the first pump isn't racing an
	// empty device
	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		logger.Log(logger.Allow, "sdlaudio", err)
	}

	go aud.pump(time.Duration(spec.DeviceSamples) * time.Second / time.Duration(spec.Rate))

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// pump moves data from the Bridge to the SDL queue every period
func (aud *Audio) pump(period time.Duration) {
	defer close(aud.done)

	tck := time.NewTicker(period)
	defer tck.Stop()

	for {
		select {
		case <-aud.quit:
			return
		case <-tck.C:
			for sdl.GetQueuedAudioSize(aud.id) < uint32(queueDepth*len(aud.buffer)) {
				// Read() always fills the buffer, with silence if necessary
				_, _ = aud.bridge.Read(aud.buffer)
				if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
					logger.Log(logger.Allow, "sdlaudio", err)
					break
				}
			}
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

	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	aud.bridge.Close()

	return nil
}
