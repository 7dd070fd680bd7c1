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
	"github.com/jetsetilly/mdoutput/paths"
	"github.com/jetsetilly/mdoutput/prefs"
)

// Names of the audio backends that can be selected with the Backend
// preference.
const (
	BackendSDL  = "sdl"
	BackendOto  = "oto"
	BackendNull = "null"
)

// Backends lists the valid values for the Backend preference.
var Backends = []string{BackendSDL, BackendOto, BackendNull}

// Preferences for the sound system. Changes take effect the next time a
// Device is created.
type Preferences struct {
	dsk *prefs.Disk

	// sound is enabled. if it is disabled then the null backend is used
	Enabled prefs.Bool

	// name of the backend
	Backend prefs.String

	// requested output sample rate
	Rate prefs.Int

	// number of frames of audio buffered in the Bridge
	Segments prefs.Int

	// requested size of the device's own buffer in samples
	Samples prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	enabled  = true
	backend  = BackendSDL
	rate     = 44100
	segments = 4
	samples  = 1024
)

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sound.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.backend", &p.Backend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.rate", &p.Rate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.segments", &p.Segments)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.samples", &p.Samples)
	if err != nil {
		return nil, err
	}

	p.Backend.SetHookPre(func(v prefs.Value) error {
		s := fmt.Sprintf("%v", v)
		for _, b := range Backends {
			if s == b {
				return nil
			}
		}
		return curated.Errorf(InvalidSpec, fmt.Sprintf("unknown backend (%s)", s))
	})

	positive := func(v prefs.Value) error {
		if n, ok := v.(int); ok && n < 0 {
			return curated.Errorf(InvalidSpec, "value must not be negative")
		}
		return nil
	}
	p.Rate.SetHookPre(positive)
	p.Segments.SetHookPre(positive)
	p.Samples.SetHookPre(func(v prefs.Value) error {
		if err := positive(v); err != nil {
			return err
		}
		if n, ok := v.(int); ok && n > MaxDeviceSamples {
			return curated.Errorf(InvalidSpec, fmt.Sprintf("device samples must not be more than %d", MaxDeviceSamples))
		}
		return nil
	})

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all sound settings to default values.
func (p *Preferences) SetDefaults() {
	p.Enabled.Set(enabled)
	p.Backend.Set(backend)
	p.Rate.Set(rate)
	p.Segments.Set(segments)
	p.Samples.Set(samples)
}

// Load sound preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current sound preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Spec returns the Spec requested by the preferences for the given frame
// rate.
func (p *Preferences) Spec(hz int) Spec {
	return Spec{
		Rate:          p.Rate.Get().(int),
		DeviceSamples: p.Samples.Get().(int),
		Segments:      p.Segments.Get().(int),
		Hz:            hz,
	}
}
