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

package main

import (
	"github.com/jetsetilly/mdoutput/digest"
	"github.com/jetsetilly/mdoutput/display"
	"github.com/jetsetilly/mdoutput/display/ebitendisplay"
	"github.com/jetsetilly/mdoutput/display/gldisplay"
	"github.com/jetsetilly/mdoutput/display/headless"
	"github.com/jetsetilly/mdoutput/display/sdldisplay"
	"github.com/jetsetilly/mdoutput/emulation"
	"github.com/jetsetilly/mdoutput/emulation/testcard"
	"github.com/jetsetilly/mdoutput/filters"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/playmode"
	"github.com/jetsetilly/mdoutput/prefs"
	"github.com/jetsetilly/mdoutput/sound"
	"github.com/jetsetilly/mdoutput/sound/nullaudio"
	"github.com/jetsetilly/mdoutput/sound/otoaudio"
	"github.com/jetsetilly/mdoutput/sound/sdlaudio"
	"github.com/jetsetilly/mdoutput/soundsource"
	"github.com/jetsetilly/mdoutput/version"
	"github.com/jetsetilly/mdoutput/wavwriter"
)

// names of the display backends
const (
	displaySDL      = "sdl"
	displayEbiten   = "ebiten"
	displayGL       = "gl"
	displayHeadless = "headless"
)

var displayBackends = []string{displaySDL, displayGL, displayEbiten, displayHeadless}

// options for a new session. taken from the command line
type options struct {
	display      string
	pal          bool
	hz           int
	filters      string
	scratchLimit int
	source       string
	wav          string
	digest       bool
}

// the video mode requested by the options
func (o options) video() (emulation.Video, error) {
	video := emulation.NTSC
	if o.pal {
		video = emulation.PAL
	}
	if o.hz != 0 {
		video.Hz = o.hz
	}
	return video, video.Validate()
}

// session ties together the display, the sound and the test card engine
type session struct {
	dprefs *display.Preferences
	sprefs *sound.Preferences

	sdl    *sdldisplay.Display
	gl     *gldisplay.Display
	ebiten *ebitendisplay.Display

	drv    *display.Driver
	bridge *sound.Bridge
	device sound.Device
	wav    *wavwriter.WavWriter

	videoDigest *digest.Video
	audioDigest *digest.Audio

	engine *testcard.TestCard
	pm     *playmode.Playmode
}

// load both sets of preferences. values on the command line stack are applied
// to whichever set of preferences recognises them
func loadPreferences() (*display.Preferences, *sound.Preferences, error) {
	dprefs, err := display.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	sprefs, err := sound.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	if prefs.SizeCommandLineStack() > 0 {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}

	return dprefs, sprefs, nil
}

func newSession(opts options) (_ *session, rerr error) {
	video, err := opts.video()
	if err != nil {
		return nil, err
	}

	ses := &session{
		bridge: sound.NewBridge(),
	}

	// release everything created so far if the session can't be completed
	defer func() {
		if rerr != nil {
			ses.destroy()
		}
	}()

	ses.dprefs, ses.sprefs, err = loadPreferences()
	if err != nil {
		return nil, err
	}

	if opts.filters != "" {
		if err := ses.dprefs.Filters.Set(opts.filters); err != nil {
			return nil, err
		}
	}

	var surface display.Surface

	switch opts.display {
	case displaySDL:
		ses.sdl, err = sdldisplay.NewDisplay(version.Title())
		if err != nil {
			return nil, err
		}
		surface = ses.sdl
	case displayGL:
		ses.gl, err = gldisplay.NewDisplay(version.Title())
		if err != nil {
			return nil, err
		}
		surface = ses.gl
	case displayEbiten:
		ses.ebiten = ebitendisplay.NewDisplay(version.Title())
		surface = ses.ebiten
	default:
		surface = headless.NewSurface()
	}

	if opts.digest {
		ses.videoDigest = digest.NewVideo(surface)
		surface = ses.videoDigest
		ses.audioDigest = digest.NewAudio()
		ses.bridge.AddTap(ses.audioDigest)
	}

	var alloc filters.Allocator
	if opts.scratchLimit > 0 {
		alloc = &filters.LimitedAllocator{Limit: opts.scratchLimit}
	}

	ses.drv, err = display.NewDriver(surface, ses.dprefs, alloc)
	if err != nil {
		return nil, err
	}

	ses.engine, err = testcard.NewTestCard(video)
	if err != nil {
		return nil, err
	}

	ses.device, err = ses.openSound(video.Hz)
	if err != nil {
		return nil, err
	}

	if opts.source != "" {
		src, err := soundsource.Load(opts.source)
		if err != nil {
			return nil, err
		}
		if src.Rate != ses.bridge.Spec().Rate {
			logger.Logf(logger.Allow, "soundsource", "%s is %dHz but the sound device is %dHz. it will play at the wrong speed",
				src.Filename, src.Rate, ses.bridge.Spec().Rate)
		}
		ses.engine.SetSource(src)
	}

	if opts.wav != "" {
		ses.wav, err = wavwriter.New(opts.wav)
		if err != nil {
			return nil, err
		}
		ses.bridge.AddTap(ses.wav)
	}

	ses.pm, err = playmode.NewPlaymode(ses.drv, ses.engine, ses.bridge, ses.device)
	if err != nil {
		return nil, err
	}

	if ses.sdl != nil {
		ses.sdl.SetEventChannel(ses.pm.UserInput())
		ses.pm.SetService(ses.sdl.Service)
	}
	if ses.gl != nil {
		ses.gl.SetEventChannel(ses.pm.UserInput())
		ses.gl.SetDiagnostics(func() string {
			return ses.pm.Diagnostics().String()
		})
		ses.pm.SetService(ses.gl.Service)
		ses.pm.AttachOverlay(ses.gl)
	}
	if ses.ebiten != nil {
		ses.ebiten.SetEventChannel(ses.pm.UserInput())
	}

	return ses, nil
}

// open the sound device selected by the preferences. the null device is used
// if sound is disabled
func (ses *session) openSound(hz int) (sound.Device, error) {
	spec := ses.sprefs.Spec(hz)

	backend := ses.sprefs.Backend.String()
	if !ses.sprefs.Enabled.Get().(bool) {
		backend = sound.BackendNull
	}

	// a failed device must be returned as a nil interface
	switch backend {
	case sound.BackendSDL:
		aud, err := sdlaudio.NewAudio(ses.bridge, spec)
		if err != nil {
			return nil, err
		}
		return aud, nil
	case sound.BackendOto:
		aud, err := otoaudio.NewAudio(ses.bridge, spec)
		if err != nil {
			return nil, err
		}
		return aud, nil
	}

	aud, err := nullaudio.NewAudio(ses.bridge, spec)
	if err != nil {
		return nil, err
	}
	return aud, nil
}

// run the presentation loop. if frames is greater than zero the loop ends
// after that many frames
func (ses *session) run(frames int) error {
	step := ses.pm.Step
	if frames > 0 {
		step = func() (bool, error) {
			if ses.engine.FrameNum() >= frames {
				return false, nil
			}
			return ses.pm.Step()
		}
	}

	if ses.ebiten != nil {
		return ses.ebiten.Run(step)
	}

	for {
		running, err := step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

func (ses *session) save() error {
	if err := ses.dprefs.Save(); err != nil {
		return err
	}
	return ses.sprefs.Save()
}

// destroy is safe to call on a partially created session
func (ses *session) destroy() {
	if ses.pm != nil {
		ses.pm.End()
	}

	if ses.device != nil {
		if err := ses.device.Close(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
	}

	if ses.wav != nil {
		ses.bridge.RemoveTap(ses.wav)
		if err := ses.wav.Close(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
	}

	if ses.drv != nil {
		ses.drv.Destroy()
	}

	if ses.sdl != nil {
		ses.sdl.Destroy()
	}

	if ses.gl != nil {
		ses.gl.Destroy()
	}
}
