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

// Package gldisplay implements the display.Surface interface with an OpenGL
// 2.1 context in an SDL window.
//
// The filters draw into a 32 bit surface in main memory. Present() uploads the
// surface to a texture, which is drawn with Dear ImGui along with an optional
// overlay showing diagnostic information.
//
// All functions MUST ONLY be called from the main thread.
package gldisplay

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/display/sdldisplay"
	"github.com/jetsetilly/mdoutput/filters"
	"github.com/jetsetilly/mdoutput/framebuffer"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/userinput"
)

// Sentinal error patterns
const (
	GLError = "gldisplay: %v"
)

// the surface is always 32 bit. the depth requested by Resize() is ignored
const depth = 32
const bpp = 4

// Display implements the display.Surface and display.Overlay interfaces.
type Display struct {
	window    *sdl.Window
	glContext sdl.GLContext

	imgui *imgui.Context
	io    imgui.IO

	// screen texture and whether it needs to be recreated because the size
	// has changed
	screen        uint32
	createTexture bool

	// font texture used by imgui
	font uint32

	width  int
	height int
	pixels []byte
	rgba   []byte

	// performance counter at the previous frame. used for imgui's delta time
	time uint64

	overlay     bool
	diagnostics func() string

	// user input events are sent over this channel
	events chan userinput.Event
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The window is not shown until the first call to Resize().
func NewDisplay(title string) (*Display, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(GLError, err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	dsp := &Display{}

	var err error

	dsp.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		320, 224,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, curated.Errorf(GLError, err)
	}

	dsp.glContext, err = dsp.window.GLCreateContext()
	if err != nil {
		dsp.Destroy()
		return nil, curated.Errorf(GLError, err)
	}

	err = dsp.window.GLMakeCurrent(dsp.glContext)
	if err != nil {
		dsp.Destroy()
		return nil, curated.Errorf(GLError, err)
	}

	// the frame limiter paces the emulation
	if err := sdl.GLSetSwapInterval(0); err != nil {
		logger.Logf(logger.Allow, "gldisplay", "swap interval: %v", err)
	}

	err = gl.Init()
	if err != nil {
		dsp.Destroy()
		return nil, curated.Errorf(GLError, err)
	}

	logger.Logf(logger.Allow, "gldisplay", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gldisplay", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gldisplay", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	dsp.imgui = imgui.CreateContext(nil)
	dsp.io = imgui.CurrentIO()
	dsp.io.SetIniFilename("")

	dsp.screen = newTexture(false)

	fonts := dsp.io.Fonts()
	fonts.AddFontDefault()
	img := fonts.TextureDataRGBA32()
	dsp.font = newTexture(true)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, img.Pixels)
	fonts.SetTextureID(imgui.TextureID(dsp.font))

	return dsp, nil
}

// create and bind a new texture
func newTexture(linear bool) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	if linear {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	}
	return id
}

// SetEventChannel sets the channel over which user input events are sent.
func (dsp *Display) SetEventChannel(events chan userinput.Event) {
	dsp.events = events
}

// SetDiagnostics sets the function that supplies the text of the overlay.
func (dsp *Display) SetDiagnostics(diagnostics func() string) {
	dsp.diagnostics = diagnostics
}

// SetOverlay implements the display.Overlay interface.
func (dsp *Display) SetOverlay(show bool) {
	dsp.overlay = show
}

// Overlay implements the display.Overlay interface.
func (dsp *Display) Overlay() bool {
	return dsp.overlay
}

// Resize implements the display.Surface interface. The depth argument is
// ignored and the surface is always 32 bit.
func (dsp *Display) Resize(width, height, _ int) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(GLError, "invalid size")
	}

	dsp.width = width
	dsp.height = height
	dsp.pixels = make([]byte, width*height*bpp)
	dsp.rgba = make([]byte, width*height*bpp)
	dsp.createTexture = true

	dsp.window.SetSize(int32(width), int32(height))
	dsp.window.Show()

	logger.Logf(logger.Allow, "gldisplay", "window: %dx%d", width, height)

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
	if dsp.pixels == nil {
		return curated.Errorf(GLError, "no surface")
	}
	return nil
}

// Unlock implements the display.Surface interface.
func (dsp *Display) Unlock() {
}

// Present implements the display.Surface interface.
func (dsp *Display) Present() error {
	if dsp.pixels == nil {
		return curated.Errorf(GLError, "no surface")
	}

	framebuffer.XRGBToRGBA(dsp.rgba, dsp.pixels)
	dsp.upload()
	dsp.render()

	return nil
}

// upload the surface to the screen texture
func (dsp *Display) upload() {
	gl.BindTexture(gl.TEXTURE_2D, dsp.screen)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if dsp.createTexture {
		dsp.createTexture = false
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(dsp.width), int32(dsp.height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(dsp.rgba))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(dsp.width), int32(dsp.height),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(dsp.rgba))
	}
}

// Service checks for SDL events and forwards them over the event channel. If
// the event channel is full then events are dropped.
func (dsp *Display) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		uev, ok := sdldisplay.TranslateEvent(ev)
		if !ok || dsp.events == nil {
			continue
		}
		select {
		case dsp.events <- uev:
		default:
		}
	}
}

// Destroy the window and release all OpenGL and imgui resources.
func (dsp *Display) Destroy() {
	if dsp.imgui != nil {
		gl.DeleteTextures(1, &dsp.screen)
		gl.DeleteTextures(1, &dsp.font)
		dsp.imgui.Destroy()
		dsp.imgui = nil
	}
	if dsp.glContext != nil {
		sdl.GLDeleteContext(dsp.glContext)
		dsp.glContext = nil
	}
	if dsp.window != nil {
		if err := dsp.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "gldisplay", err)
		}
		dsp.window = nil
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}
