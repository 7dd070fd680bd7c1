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

// Package sdldisplay implements the display.Surface interface with an SDL
// window.
//
// The filters draw into a software surface of the requested depth, which is
// blitted to the window surface by Present(). SDL converts between the two
// formats if necessary.
//
// All functions MUST ONLY be called from the main thread.
package sdldisplay

import (
	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/filters"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns
const (
	SDLError = "sdldisplay: %v"
)

// Display implements the display.Surface interface.
type Display struct {
	window *sdl.Window

	// the surface the filters draw into
	shadow *sdl.Surface
	depth  int

	// pixel data of the shadow surface. only valid while the shadow surface
	// exists
	pixels []byte

	// user input events are sent over this channel
	events chan userinput.Event
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The window is not shown until the first call to Resize().
func NewDisplay(title string) (*Display, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// a mouse is never required
	sdl.ShowCursor(sdl.DISABLE)

	// MOUSEMOTION events fill up the event queue pretty quickly and are of no
	// use to us
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	w, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		0, 0,
		sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	return &Display{
		window: w,
	}, nil
}

// SetEventChannel sets the channel over which user input events are sent.
func (dsp *Display) SetEventChannel(events chan userinput.Event) {
	dsp.events = events
}

// the SDL pixel format for each supported depth. 24 bit pixels are stored in
// little-endian order which is BGR24 in SDL's terminology
func pixelFormat(depth int) (uint32, int) {
	switch depth {
	case 8:
		return sdl.PIXELFORMAT_RGB332, 8
	case 15:
		return sdl.PIXELFORMAT_RGB555, 15
	case 24:
		return sdl.PIXELFORMAT_BGR24, 24
	case 32:
		return sdl.PIXELFORMAT_RGB888, 32
	}
	return sdl.PIXELFORMAT_RGB565, 16
}

// Resize implements the display.Surface interface.
func (dsp *Display) Resize(width, height, depth int) error {
	format, depth := pixelFormat(depth)

	// create new surface before destroying the old one so that the previous
	// state is retained on error
	shadow, err := sdl.CreateRGBSurfaceWithFormat(0, int32(width), int32(height), int32(depth), format)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	if dsp.shadow != nil {
		dsp.shadow.Free()
	}
	dsp.shadow = shadow
	dsp.depth = depth
	dsp.pixels = shadow.Pixels()

	dsp.window.SetSize(int32(width), int32(height))
	dsp.window.Show()

	logger.Logf(logger.Allow, "sdldisplay", "window: %dx%d, %s", width, height, sdl.GetPixelFormatName(uint(format)))

	return nil
}

// Region implements the display.Surface interface.
func (dsp *Display) Region() filters.Region {
	if dsp.shadow == nil {
		return filters.Region{}
	}
	return filters.Region{
		Buf:    dsp.pixels,
		Width:  int(dsp.shadow.W),
		Height: int(dsp.shadow.H),
		Pitch:  int(dsp.shadow.Pitch),
	}
}

// Depth implements the display.Surface interface.
func (dsp *Display) Depth() int {
	return dsp.depth
}

// Lock implements the display.Surface interface.
func (dsp *Display) Lock() error {
	if dsp.shadow == nil {
		return curated.Errorf(SDLError, "no surface")
	}
	if err := dsp.shadow.Lock(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// Unlock implements the display.Surface interface.
func (dsp *Display) Unlock() {
	if dsp.shadow != nil {
		dsp.shadow.Unlock()
	}
}

// Present implements the display.Surface interface.
func (dsp *Display) Present() error {
	ws, err := dsp.window.GetSurface()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = dsp.shadow.Blit(nil, ws, nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = dsp.window.UpdateSurface()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// Destroy the window and release the surface.
func (dsp *Display) Destroy() {
	if dsp.shadow != nil {
		dsp.shadow.Free()
		dsp.shadow = nil
		dsp.pixels = nil
	}
	if err := dsp.window.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdldisplay", err)
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}
