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
	"os"
	"os/signal"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/display"
	"github.com/jetsetilly/mdoutput/emulation"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/performance/limiter"
	"github.com/jetsetilly/mdoutput/screenshot"
	"github.com/jetsetilly/mdoutput/sound"
	"github.com/jetsetilly/mdoutput/userinput"
)

// Sentinal error patterns for the playmode package.
const (
	PlayError = "playmode: %v"
)

// Engine is the emulation driven by the Playmode.
type Engine interface {
	emulation.Engine

	// change the video mode of the engine
	SetVideo(video emulation.Video) error

	// the sample rate of the sound bridge. called whenever the bridge is
	// reopened
	SetRate(rate int)
}

// Playmode drives the emulation engine, the display and the sound.
type Playmode struct {
	drv    *display.Driver
	engine Engine

	bridge *sound.Bridge
	device sound.Device

	limiter *limiter.FpsLimiter

	state emulation.State

	// user input from the display backend
	userinput chan userinput.Event

	// interrupt signals from the OS
	intChan chan os.Signal

	// called at the start of every Step(). some backends must be serviced
	// from the main thread
	service func()

	// diagnostics overlay of the display backend. nil if not available
	overlay display.Overlay

	// video mode to apply before the next frame
	pending *emulation.Video

	// format of screenshots taken with the hotkey
	ScreenshotFormat screenshot.Format
}

// NewPlaymode is the preferred method of initialisation for the Playmode
// type. The display driver is initialised for the engine's video mode. The
// device can be nil, in which case the engine is not asked for sound.
func NewPlaymode(drv *display.Driver, engine Engine, bridge *sound.Bridge, device sound.Device) (*Playmode, error) {
	pm := &Playmode{
		drv:              drv,
		engine:           engine,
		bridge:           bridge,
		device:           device,
		state:            emulation.Initialising,
		userinput:        make(chan userinput.Event, 10),
		intChan:          make(chan os.Signal, 1),
		ScreenshotFormat: screenshot.PNG,
	}

	video := engine.Video()

	err := drv.Init(video)
	if err != nil {
		return nil, curated.Errorf(PlayError, err)
	}

	pm.limiter, err = limiter.NewFPSLimiter(video.Hz)
	if err != nil {
		return nil, curated.Errorf(PlayError, err)
	}

	if device != nil {
		engine.SetRate(bridge.Spec().Rate)
	}

	signal.Notify(pm.intChan, os.Interrupt)

	pm.state = emulation.Running

	logger.Logf(logger.Allow, "playmode", "running %s", video)

	return pm, nil
}

// UserInput returns the channel over which the display backend should send
// user input events.
func (pm *Playmode) UserInput() chan userinput.Event {
	return pm.userinput
}

// SetService sets the function to be called at the start of every Step().
func (pm *Playmode) SetService(service func()) {
	pm.service = service
}

// AttachOverlay sets the overlay toggled by the overlay hotkey.
func (pm *Playmode) AttachOverlay(overlay display.Overlay) {
	pm.overlay = overlay
}

// SetUncapped turns off the frame limiter. The loop runs as quickly as
// possible.
func (pm *Playmode) SetUncapped(uncapped bool) {
	pm.limiter.SetActive(!uncapped)
}

// State returns the current state of the Playmode.
func (pm *Playmode) State() emulation.State {
	return pm.state
}

// Frames returns the number of frames presented by the display driver.
func (pm *Playmode) Frames() int {
	return pm.drv.Frames()
}

// Hz returns the frame rate of the current video mode.
func (pm *Playmode) Hz() int {
	return pm.drv.Video().Hz
}

// Step runs the emulation for a single frame. Returns false when the loop
// should end.
func (pm *Playmode) Step() (bool, error) {
	if pm.service != nil {
		pm.service()
	}

	if err := pm.eventHandler(); err != nil {
		return false, err
	}

	if pm.state == emulation.Ending {
		return false, nil
	}

	if pm.pending != nil {
		video := *pm.pending
		pm.pending = nil
		if err := pm.setVideo(video); err != nil {
			return false, err
		}
	}

	if pm.state == emulation.Running {
		fb := pm.drv.Frame()
		if fb == nil {
			return false, curated.Errorf(PlayError, curated.Errorf(display.NotReady))
		}

		var samples []int16
		if pm.device != nil {
			samples = pm.bridge.Batch()
		}

		if err := pm.engine.Frame(fb, samples); err != nil {
			return false, curated.Errorf(PlayError, err)
		}

		if samples != nil {
			pm.bridge.Commit()
		}
	}

	// the display is updated even when paused so that changes to the filters
	// are visible
	if err := pm.drv.Update(); err != nil {
		return false, curated.Errorf(PlayError, err)
	}

	pm.limiter.Wait()

	return true, nil
}

// Run calls Step() until the loop ends.
func (pm *Playmode) Run() error {
	for {
		running, err := pm.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// End releases the resources held by the Playmode. The display driver and
// sound device are not closed.
func (pm *Playmode) End() {
	signal.Stop(pm.intChan)
	pm.limiter.Close()
	pm.state = emulation.Ending
}

// setVideo applies a new video mode to the display, the engine and the
// sound. if the display can not accommodate the new mode the previous mode
// is kept
func (pm *Playmode) setVideo(video emulation.Video) error {
	err := pm.drv.Reinit(video)
	if err != nil {
		if curated.Is(err, display.PreviousState) {
			logger.Logf(logger.Allow, "playmode", "video mode unchanged: %v", err)
			return nil
		}
		return curated.Errorf(PlayError, err)
	}

	if err := pm.engine.SetVideo(video); err != nil {
		return curated.Errorf(PlayError, err)
	}

	if pm.device != nil {
		if err := pm.device.SetHz(video.Hz); err != nil {
			logger.Logf(logger.Allow, "playmode", "sound: %v", err)
		}
		pm.engine.SetRate(pm.bridge.Spec().Rate)
	}

	if err := pm.limiter.SetLimit(video.Hz); err != nil {
		return curated.Errorf(PlayError, err)
	}

	logger.Logf(logger.Allow, "playmode", "video mode changed to %s", video)

	return nil
}

// SetFeature implements the emulation.FeatureSetter interface.
func (pm *Playmode) SetFeature(request emulation.FeatureReq, args ...emulation.FeatureReqData) error {
	switch request {
	case emulation.ReqSetPause:
		if len(args) != 1 {
			return curated.Errorf(PlayError, "ReqSetPause requires one argument")
		}
		pause, ok := args[0].(bool)
		if !ok {
			return curated.Errorf(PlayError, "ReqSetPause argument must be a bool")
		}
		if pm.state == emulation.Ending {
			return nil
		}
		if pause {
			pm.state = emulation.Paused
		} else {
			pm.state = emulation.Running
		}

	case emulation.ReqSetVideo:
		if len(args) != 1 {
			return curated.Errorf(PlayError, "ReqSetVideo requires one argument")
		}
		video, ok := args[0].(emulation.Video)
		if !ok {
			return curated.Errorf(PlayError, "ReqSetVideo argument must be an emulation.Video")
		}
		if err := video.Validate(); err != nil {
			return curated.Errorf(PlayError, err)
		}
		pm.pending = &video

	case emulation.ReqQuit:
		pm.state = emulation.Ending

	default:
		return curated.Errorf(emulation.UnsupportedEmulationFeature, request)
	}

	return nil
}
