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

package playmode_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/display"
	"github.com/jetsetilly/mdoutput/display/headless"
	"github.com/jetsetilly/mdoutput/emulation"
	"github.com/jetsetilly/mdoutput/emulation/testcard"
	"github.com/jetsetilly/mdoutput/playmode"
	"github.com/jetsetilly/mdoutput/sound"
	"github.com/jetsetilly/mdoutput/sound/nullaudio"
	"github.com/jetsetilly/mdoutput/test"
	"github.com/jetsetilly/mdoutput/userinput"
)

var _ emulation.FeatureSetter = (*playmode.Playmode)(nil)
var _ userinput.HandleInput = (*playmode.Playmode)(nil)
var _ playmode.Engine = (*testcard.TestCard)(nil)

// counts the samples committed to the bridge
type counter struct {
	crit sync.Mutex
	n    int
	rate int
}

func (c *counter) Samples(rate int, samples []int16) error {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.n += len(samples)
	c.rate = rate
	return nil
}

func (c *counter) count() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.n
}

type harness struct {
	pm     *playmode.Playmode
	srf    *headless.Surface
	drv    *display.Driver
	tc     *testcard.TestCard
	bridge *sound.Bridge
	aud    *nullaudio.Audio
	taps   *counter
}

// create a playmode with a headless display and null audio. the preferences
// and screenshots are stored relative to the current directory so every test
// runs in its own directory
func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Chdir(t.TempDir())

	h := &harness{
		srf:    headless.NewSurface(),
		bridge: sound.NewBridge(),
		taps:   &counter{},
	}

	p, err := display.NewPreferences()
	test.DemandSuccess(t, err)

	h.drv, err = display.NewDriver(h.srf, p, nil)
	test.DemandSuccess(t, err)

	h.tc, err = testcard.NewTestCard(emulation.NTSC)
	test.DemandSuccess(t, err)

	h.aud, err = nullaudio.NewAudio(h.bridge, sound.Spec{
		Rate:          48000,
		DeviceSamples: 480,
		Segments:      4,
		Hz:            60,
	})
	test.DemandSuccess(t, err)
	h.bridge.AddTap(h.taps)

	h.pm, err = playmode.NewPlaymode(h.drv, h.tc, h.bridge, h.aud)
	test.DemandSuccess(t, err)
	h.pm.SetUncapped(true)

	t.Cleanup(func() {
		h.pm.End()
		h.aud.Close()
		h.drv.Destroy()
	})

	return h
}

func TestStep(t *testing.T) {
	h := newHarness(t)

	// the display is presented once during initialisation
	test.ExpectEquality(t, h.pm.Frames(), 1)
	test.ExpectEquality(t, h.pm.Hz(), 60)
	test.ExpectEquality(t, h.pm.State(), emulation.Running)

	for range 10 {
		running, err := h.pm.Step()
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, running)
	}

	test.ExpectEquality(t, h.pm.Frames(), 11)
	test.ExpectEquality(t, h.srf.Presented, 11)
	test.ExpectEquality(t, h.tc.FrameNum(), 10)

	// 800 stereo samples per frame at 48000Hz and 60Hz
	test.ExpectEquality(t, h.taps.count(), 10*800*sound.Channels)
}

func TestPause(t *testing.T) {
	h := newHarness(t)

	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionPause))
	test.ExpectEquality(t, h.pm.State(), emulation.Paused)

	// the display is still updated while paused but the engine is not run
	_, err := h.pm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.tc.FrameNum(), 0)
	test.ExpectEquality(t, h.pm.Frames(), 2)
	test.ExpectEquality(t, h.taps.count(), 0)

	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionPause))
	test.ExpectEquality(t, h.pm.State(), emulation.Running)

	_, err = h.pm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.tc.FrameNum(), 1)
}

func TestQuit(t *testing.T) {
	h := newHarness(t)

	// an escape key press is sent over the user input channel as if from a
	// display backend
	h.pm.UserInput() <- userinput.EventKeyboard{Key: "Escape", Down: true}

	running, err := h.pm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, running)
	test.ExpectEquality(t, h.pm.State(), emulation.Ending)

	// pausing has no effect once the playmode is ending
	test.ExpectSuccess(t, h.pm.SetFeature(emulation.ReqSetPause, true))
	test.ExpectEquality(t, h.pm.State(), emulation.Ending)

	// Run() returns immediately
	test.ExpectSuccess(t, h.pm.Run())
}

func TestRegionChange(t *testing.T) {
	h := newHarness(t)

	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionToggleRegion))

	// the change is applied at the start of the next step
	test.ExpectEquality(t, h.drv.Video(), emulation.NTSC)
	_, err := h.pm.Step()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, h.drv.Video(), emulation.PAL)
	test.ExpectEquality(t, h.tc.Video(), emulation.PAL)
	test.ExpectEquality(t, h.pm.Hz(), 50)
	test.ExpectEquality(t, h.drv.Frame().Height, 240)

	// the sound is reopened for the new frame rate
	test.ExpectEquality(t, h.aud.Spec().Hz, 50)
	test.ExpectEquality(t, len(h.bridge.Batch()), 960*sound.Channels)

	// the display keeps its size
	w, hgt := h.drv.Size()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, hgt, 224)

	// and back again
	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionToggleRegion))
	_, err = h.pm.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.drv.Video(), emulation.NTSC)
	test.ExpectEquality(t, h.aud.Spec().Hz, 60)
}

func TestRegionChangeRefused(t *testing.T) {
	h := newHarness(t)

	// the surface can not be resized so the video mode is left unchanged and
	// the emulation continues
	h.srf.Limit = 1

	test.ExpectSuccess(t, h.pm.SetFeature(emulation.ReqSetVideo, emulation.PAL))
	running, err := h.pm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, running)

	test.ExpectEquality(t, h.drv.Video(), emulation.NTSC)
	test.ExpectEquality(t, h.tc.Video(), emulation.NTSC)
	test.ExpectEquality(t, h.aud.Spec().Hz, 60)
	test.ExpectEquality(t, h.tc.FrameNum(), 1)
}

func TestSetFeature(t *testing.T) {
	h := newHarness(t)

	err := h.pm.SetFeature(emulation.ReqSetVideo, emulation.Video{Width: 320, Height: 224, Hz: 0})
	test.ExpectFailure(t, err)

	err = h.pm.SetFeature(emulation.ReqSetPause, "yes")
	test.ExpectFailure(t, err)

	err = h.pm.SetFeature(emulation.FeatureReq("ReqRewind"))
	test.ExpectSuccess(t, curated.Is(err, emulation.UnsupportedEmulationFeature))

	test.ExpectSuccess(t, h.pm.SetFeature(emulation.ReqQuit))
	running, err := h.pm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, running)
}

func TestHotkeys(t *testing.T) {
	h := newHarness(t)
	p := h.drv.Preferences()

	test.ExpectEquality(t, p.Filters.String(), "stretch")

	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionNextFilter))
	test.ExpectEquality(t, p.Filters.String(), "scale")
	test.ExpectEquality(t, h.drv.Stack().Len(), 1)
	test.ExpectEquality(t, h.drv.Stack().Filters()[0].Name, "scale")

	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionNextFilter))
	test.ExpectEquality(t, p.Filters.String(), "scale,stretch")
	test.ExpectEquality(t, h.drv.Stack().Len(), 2)

	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionNextFilter))
	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionNextFilter))
	test.ExpectEquality(t, p.Filters.String(), "stretch")

	aspect := p.Aspect.Get().(bool)
	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionToggleAspect))
	test.ExpectEquality(t, p.Aspect.Get().(bool), !aspect)
}

type overlay struct {
	show bool
}

func (o *overlay) SetOverlay(show bool) {
	o.show = show
}

func (o *overlay) Overlay() bool {
	return o.show
}

func TestOverlay(t *testing.T) {
	h := newHarness(t)

	// no overlay attached is not an error
	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionToggleOverlay))

	o := &overlay{}
	h.pm.AttachOverlay(o)

	// the hotkey arrives through the user input channel like any other event
	h.pm.UserInput() <- userinput.EventKeyboard{Key: "F8", Down: true}
	_, err := h.pm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, o.show)

	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionToggleOverlay))
	test.ExpectFailure(t, o.show)
}

func TestScreenshot(t *testing.T) {
	h := newHarness(t)

	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionScreenshot))
	test.ExpectSuccess(t, h.pm.HandleAction(userinput.ActionRawScreenshot))

	files, err := os.ReadDir(filepath.Join(".mdoutput", "screenshots"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(files), 2)
}

func TestDiagnostics(t *testing.T) {
	h := newHarness(t)

	_, err := h.pm.Step()
	test.DemandSuccess(t, err)

	d := h.pm.Diagnostics()
	test.ExpectEquality(t, d.State, emulation.Running)
	test.ExpectEquality(t, d.Video, emulation.NTSC)
	test.ExpectEquality(t, d.Frames, 2)
	test.ExpectEquality(t, d.Width, 320)
	test.ExpectEquality(t, d.Height, 224)
	test.ExpectSuccess(t, d.Sound)
	test.ExpectEquality(t, d.Rate, 48000)

	s := d.String()
	test.ExpectSuccess(t, strings.Contains(s, "video: NTSC 320x224@60Hz"))
	test.ExpectSuccess(t, strings.Contains(s, "stretch"))
	test.ExpectSuccess(t, strings.Contains(s, "sound: 48000Hz"))
}
