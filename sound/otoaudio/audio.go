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

// Package otoaudio plays the contents of a sound.Bridge using the oto audio
// library. The oto player reads directly from the Bridge, which fills any
// shortfall with silence, so the player never runs dry.
package otoaudio

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/sound"
)

// oto allows only one context per process. the context is created on first
// use and reused by any subsequent Audio instances
var (
	context     *oto.Context
	contextRate int
	contextCrit sync.Mutex
)

func getContext(spec sound.Spec) (*oto.Context, error) {
	contextCrit.Lock()
	defer contextCrit.Unlock()

	if context != nil {
		if contextRate != spec.Rate {
			return nil, curated.Errorf(sound.DeviceError, "oto context already running at a different sample rate")
		}
		return context, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   spec.Rate,
		ChannelCount: sound.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   time.Duration(spec.DeviceSamples) * time.Second / time.Duration(spec.Rate),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(sound.DeviceError, err)
	}
	<-ready

	context = ctx
	contextRate = spec.Rate

	return context, nil
}

// Audio outputs sound using oto
type Audio struct {
	bridge *sound.Bridge

	crit   sync.Mutex
	spec   sound.Spec
	player *oto.Player
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(bridge *sound.Bridge, requested sound.Spec) (*Audio, error) {
	if err := requested.Validate(); err != nil {
		return nil, err
	}

	ctx, err := getContext(requested)
	if err != nil {
		return nil, err
	}

	if err := bridge.Open(requested); err != nil {
		return nil, err
	}

	aud := &Audio{
		bridge: bridge,
		spec:   requested,
		player: ctx.NewPlayer(bridge),
	}

	// the player's own buffer is kept to the size of the device buffer. the
	// default is much larger and would introduce lag
	aud.player.SetBufferSize(requested.DeviceSamples * sound.FrameSize)
	aud.player.Play()

	logger.Logf(logger.Allow, "otoaudio", "frequency: %d samples/sec", requested.Rate)
	logger.Logf(logger.Allow, "otoaudio", "buffer size: %d samples", requested.DeviceSamples)

	return aud, nil
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
	aud.crit.Lock()
	defer aud.crit.Unlock()

	aud.player.Pause()
	err := aud.player.Close()
	aud.bridge.Close()
	if err != nil {
		return curated.Errorf(sound.DeviceError, err)
	}

	return nil
}
