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

package display

import (
	"image"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/emulation"
	"github.com/jetsetilly/mdoutput/filters"
	"github.com/jetsetilly/mdoutput/framebuffer"
	"github.com/jetsetilly/mdoutput/logger"
)

// Driver presents frames drawn by the emulation on a Surface.
type Driver struct {
	surface Surface
	prefs   *Preferences
	stack   *filters.Stack

	video emulation.Video

	// the frame the emulation draws into. allocated in the same format as
	// the surface
	frame  *framebuffer.Frame
	format framebuffer.Format

	// size of the surface as it was last successfully initialised
	width  int
	height int

	ready bool

	// number of calls to Update()
	frames int
}

// NewDriver is the preferred method of initialisation for the Driver type.
// Scratch buffers for the filters are allocated with alloc. If alloc is nil
// then buffers are allocated from the heap.
//
// The Driver can not be used until Init() has returned successfully.
func NewDriver(surface Surface, prefs *Preferences, alloc filters.Allocator) (*Driver, error) {
	drv := &Driver{
		surface: surface,
		prefs:   prefs,
		stack:   filters.NewStack(alloc),
	}

	drv.stack.SetLocker(surface)

	l, err := filters.ParseList(prefs.Filters.String())
	if err != nil {
		return nil, err
	}
	drv.stack.Set(l)

	prefs.drv = drv

	return drv, nil
}

// Init the Driver for the video mode. The size of the surface is taken from
// the preferences, with a size of zero meaning the size of the video.
func (drv *Driver) Init(video emulation.Video) error {
	if err := video.Validate(); err != nil {
		return curated.Errorf(PreviousState, err)
	}

	prev := drv.video
	drv.video = video

	err := drv.screenInit(drv.prefs.Width.Get().(int), drv.prefs.Height.Get().(int))
	if err != nil {
		if curated.Is(err, PreviousState) {
			drv.video = prev
		}
		return err
	}

	logger.Logf(logger.Allow, "display", "video: %dx%d, %s, %dHz", drv.width, drv.height, drv.format, video.Hz)

	return nil
}

// Reinit the Driver for a new video mode. The surface keeps the size it was
// given by the most recent call to Init().
func (drv *Driver) Reinit(video emulation.Video) error {
	if !drv.ready {
		return drv.Init(video)
	}

	if err := video.Validate(); err != nil {
		return curated.Errorf(PreviousState, err)
	}

	prev := drv.video
	drv.video = video

	err := drv.screenInit(drv.width, drv.height)
	if err != nil {
		if curated.Is(err, PreviousState) {
			drv.video = prev
		}
		return err
	}

	logger.Logf(logger.Allow, "display", "reinitialised for %s", video)

	return nil
}

func (drv *Driver) screenInit(width, height int) error {
	if width <= 0 {
		width = drv.video.Width
	}
	if height <= 0 {
		height = drv.video.Height
	}

	requested := drv.prefs.Depth.Get().(int)

	err := drv.surface.Resize(width, height, requested)
	if err != nil {
		return curated.Errorf(PreviousState, err)
	}

	// from this point on the surface has changed and the previous state can
	// not be restored
	drv.ready = false

	region := drv.surface.Region()
	depth := drv.surface.Depth()

	// surfaces do not always distinguish between 15 and 16 bit colour
	if requested == 15 && depth == 16 {
		depth = 15
	}

	format, err := framebuffer.NewFormat(depth)
	if err != nil {
		drv.detach()
		return curated.Errorf(Unusable, err)
	}
	if region.Pitch < region.Width*format.Bpp || len(region.Buf) < region.Pitch*region.Height {
		drv.detach()
		return curated.Errorf(Unusable, "surface is smaller than its dimensions")
	}

	drv.width = region.Width
	drv.height = region.Height
	drv.format = format

	if !drv.frame.Matches(format, drv.video.Width, drv.video.Height) {
		drv.frame = framebuffer.NewFrame(format, drv.video.Width, drv.video.Height)
	}

	drv.stack.SetIO(drv.frameRegion(), region, format)
	drv.stack.SetConfig(drv.config())

	drv.ready = true

	return drv.Update()
}

// detach the filter stack from the surface. the memory used by the surface
// before it was resized may no longer be valid
func (drv *Driver) detach() {
	drv.stack.SetIO(filters.Region{}, filters.Region{}, drv.format)
}

// the filter configuration. scale factors are derived from the size of the
// surface if the preferences do not specify them
func (drv *Driver) config() filters.Config {
	cfg := filters.Config{
		XScale: drv.prefs.XScale.Get().(int),
		YScale: drv.prefs.YScale.Get().(int),
		Aspect: drv.prefs.Aspect.Get().(bool),
	}

	if cfg.XScale < 0 {
		cfg.XScale = drv.width / drv.video.Width
	}
	if cfg.YScale < 0 {
		cfg.YScale = drv.height / drv.video.Height
	}

	if cfg.Aspect {
		cfg.XScale = min(cfg.XScale, cfg.YScale)
		cfg.YScale = cfg.XScale
	}

	return cfg
}

// called when the preferences that affect the filter configuration change
func (drv *Driver) reconfigure() {
	if !drv.ready {
		return
	}
	drv.stack.SetConfig(drv.config())
}

func (drv *Driver) frameRegion() filters.Region {
	return filters.Region{
		Buf:    drv.frame.Visible(),
		Width:  drv.frame.Width,
		Height: drv.frame.Height,
		Pitch:  drv.frame.Pitch,
	}
}

// Update sends the current frame through the filter stack and presents the
// result.
func (drv *Driver) Update() error {
	if !drv.ready {
		return curated.Errorf(NotReady)
	}

	if err := drv.stack.Process(); err != nil {
		return err
	}

	drv.frames++

	return drv.surface.Present()
}

// Frame returns the framebuffer the emulation should draw into. The
// framebuffer changes after a successful call to Init() or Reinit(). Returns
// nil if the Driver has not been initialised.
func (drv *Driver) Frame() *framebuffer.Frame {
	if !drv.ready {
		return nil
	}
	return drv.frame
}

// Stack returns the filter stack used by the Driver.
func (drv *Driver) Stack() *filters.Stack {
	return drv.stack
}

// Preferences returns the display preferences used by the Driver.
func (drv *Driver) Preferences() *Preferences {
	return drv.prefs
}

// Video returns the video mode the Driver was initialised for.
func (drv *Driver) Video() emulation.Video {
	return drv.video
}

// Format returns the pixel format of the surface and frame.
func (drv *Driver) Format() framebuffer.Format {
	return drv.format
}

// Size returns the size of the surface.
func (drv *Driver) Size() (int, int) {
	return drv.width, drv.height
}

// Frames returns the number of frames that have been presented.
func (drv *Driver) Frames() int {
	return drv.frames
}

// Screenshot returns a copy of the surface as an image. If raw is true then
// the image will be of the frame as drawn by the emulation, without any
// filtering.
func (drv *Driver) Screenshot(raw bool) (*image.RGBA, error) {
	if !drv.ready {
		return nil, curated.Errorf(NotReady)
	}

	if raw {
		return framebuffer.ToImage(drv.format, drv.frame.Visible(), drv.frame.Width, drv.frame.Height, drv.frame.Pitch), nil
	}

	if err := drv.surface.Lock(); err != nil {
		return nil, err
	}
	defer drv.surface.Unlock()

	r := drv.surface.Region()
	return framebuffer.ToImage(drv.format, r.Buf, r.Width, r.Height, r.Pitch), nil
}

// Destroy releases the resources held by the Driver. The Driver should not be
// used after being destroyed.
func (drv *Driver) Destroy() {
	drv.ready = false
	drv.stack.Destroy()
	drv.frame = nil
	if drv.prefs.drv == drv {
		drv.prefs.drv = nil
	}
}
