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

// Package ebitendisplay implements the display.Surface interface with an
// Ebitengine window.
//
// The surface is always 32 bits deep. The pixels are converted to RGBA and
// uploaded to an ebiten.Image every Draw(). Because Ebitengine owns the main
// loop, the emulation is stepped from the game's Update() function by Run().
package ebitendisplay

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/filters"
	"github.com/jetsetilly/mdoutput/framebuffer"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/userinput"
)

// Sentinal error patterns
const (
	EbitenError = "ebitendisplay: %v"
)

const depth = 32
const bpp = 4

// Display implements the display.Surface interface.
type Display struct {
	crit sync.Mutex

	width  int
	height int
	pixels []byte

	// the pixels converted to RGBA for uploading to the image
	rgba  []byte
	image *ebiten.Image

	// the pixels have changed since the last Draw()
	dirty bool

	events chan userinput.Event

	// reused by the keyboard service
	keys []ebiten.Key
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(title string) *Display {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	// the presentation loop has its own frame limiter. the game's Update()
	// is called once per Draw() and the limiter decides the pace
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	return &Display{}
}

// SetEventChannel sets the channel over which user input events are sent.
func (dsp *Display) SetEventChannel(events chan userinput.Event) {
	dsp.events = events
}

// Resize implements the display.Surface interface. The depth argument is
// ignored.
func (dsp *Display) Resize(width, height, _ int) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(EbitenError, "bad dimensions")
	}

	dsp.crit.Lock()
	defer dsp.crit.Unlock()

	dsp.width = width
	dsp.height = height
	dsp.pixels = make([]byte, width*height*bpp)
	dsp.rgba = make([]byte, width*height*bpp)
	dsp.dirty = true

	ebiten.SetWindowSize(width, height)

	logger.Logf(logger.Allow, "ebitendisplay", "window: %dx%d", width, height)

	return nil
}

// Region implements the display.Surface interface.
func (dsp *Display) Region() filters.Region {
	return filters.Region{
		Buf:    dsp.pixels,
		Width:  dsp.width,
		Height: dsp.height,
		Pitch:  dsp.width * bpp,
	}
}

// Depth implements the display.Surface interface.
func (dsp *Display) Depth() int {
	return depth
}

// Lock implements the display.Surface interface.
func (dsp *Display) Lock() error {
	dsp.crit.Lock()
	return nil
}

// Unlock implements the display.Surface interface.
func (dsp *Display) Unlock() {
	dsp.crit.Unlock()
}

// Present implements the display.Surface interface. The pixels are uploaded
// on the next Draw().
func (dsp *Display) Present() error {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	dsp.dirty = true
	return nil
}

// Run the ebiten game loop. The step function is called once per tick and
// should return false when the loop should end. Run() MUST ONLY be called
// from the main thread.
func (dsp *Display) Run(step func() (bool, error)) error {
	return ebiten.RunGame(&game{dsp: dsp, step: step})
}

// game implements the ebiten.Game interface
type game struct {
	dsp  *Display
	step func() (bool, error)
}

func (g *game) Update() error {
	g.dsp.service()

	ok, err := g.step()
	if err != nil {
		return err
	}
	if !ok {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	dsp := g.dsp

	dsp.crit.Lock()
	defer dsp.crit.Unlock()

	if dsp.width == 0 || dsp.height == 0 {
		return
	}

	if dsp.image == nil || dsp.image.Bounds().Dx() != dsp.width || dsp.image.Bounds().Dy() != dsp.height {
		if dsp.image != nil {
			dsp.image.Deallocate()
		}
		dsp.image = ebiten.NewImage(dsp.width, dsp.height)
		dsp.dirty = true
	}

	if dsp.dirty {
		framebuffer.XRGBToRGBA(dsp.rgba, dsp.pixels)
		dsp.image.WritePixels(dsp.rgba)
		dsp.dirty = false
	}

	screen.DrawImage(dsp.image, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.dsp.crit.Lock()
	defer g.dsp.crit.Unlock()
	if g.dsp.width == 0 || g.dsp.height == 0 {
		return outsideWidth, outsideHeight
	}
	return g.dsp.width, g.dsp.height
}

// service forwards keyboard events over the event channel
func (dsp *Display) service() {
	if dsp.events == nil {
		return
	}

	if ebiten.IsWindowBeingClosed() {
		dsp.send(userinput.EventQuit{})
	}

	mod := userinput.KeyModNone
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyAlt):
		mod = userinput.KeyModAlt
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		mod = userinput.KeyModShift
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		mod = userinput.KeyModCtrl
	}

	dsp.keys = inpututil.AppendJustPressedKeys(dsp.keys[:0])
	for _, k := range dsp.keys {
		dsp.send(userinput.EventKeyboard{Key: k.String(), Down: true, Mod: mod})
	}

	dsp.keys = inpututil.AppendJustReleasedKeys(dsp.keys[:0])
	for _, k := range dsp.keys {
		dsp.send(userinput.EventKeyboard{Key: k.String(), Down: false, Mod: mod})
	}
}

func (dsp *Display) send(ev userinput.Event) {
	select {
	case dsp.events <- ev:
	default:
	}
}
