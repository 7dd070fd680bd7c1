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
	"github.com/jetsetilly/mdoutput/filters"
	"github.com/jetsetilly/mdoutput/paths"
	"github.com/jetsetilly/mdoutput/prefs"
)

// Preferences for the display. Changes to the scaling and filter preferences
// take effect immediately if a Driver is attached. Changes to the size and
// depth take effect on the next call to Driver.Init() or Driver.Reinit().
type Preferences struct {
	dsk *prefs.Disk

	// scale factors used by the scale filter. a negative value means the
	// factor is derived from the size of the display
	XScale prefs.Int
	YScale prefs.Int

	// keep the aspect ratio of the emulated screen when resizing. this affects
	// the derived scale factors as well as the stretch filter
	Aspect prefs.Bool

	// requested depth of the display
	Depth prefs.Int

	// requested size of the display. a value of zero means the size of the
	// emulated screen
	Width  prefs.Int
	Height prefs.Int

	// comma separated list of filter names
	Filters prefs.String

	// the driver to notify of changes
	drv *Driver
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	xscale     = -1
	yscale     = -1
	aspect     = true
	depth      = 16
	width      = 0
	height     = 0
	filterList = "stretch"
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

	err = p.dsk.Add("display.xscale", &p.XScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.yscale", &p.YScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.aspect", &p.Aspect)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.depth", &p.Depth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.height", &p.Height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.filters", &p.Filters)
	if err != nil {
		return nil, err
	}

	// check that the filter list is valid before it is accepted
	p.Filters.SetHookPre(func(v prefs.Value) error {
		_, err := filters.ParseList(v.(string))
		return err
	})

	reconfigure := func(prefs.Value) error {
		if p.drv != nil {
			p.drv.reconfigure()
		}
		return nil
	}
	p.XScale.SetHookPost(reconfigure)
	p.YScale.SetHookPost(reconfigure)
	p.Aspect.SetHookPost(reconfigure)

	p.Filters.SetHookPost(func(v prefs.Value) error {
		if p.drv != nil {
			// the list has already been checked by the pre hook
			l, _ := filters.ParseList(v.(string))
			p.drv.stack.Set(l)
		}
		return nil
	})

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all display settings to default values.
func (p *Preferences) SetDefaults() {
	p.XScale.Set(xscale)
	p.YScale.Set(yscale)
	p.Aspect.Set(aspect)
	p.Depth.Set(depth)
	p.Width.Set(width)
	p.Height.Set(height)
	p.Filters.Set(filterList)
}

// Load display preferences and apply to the attached driver.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current display preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
