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
	"github.com/jetsetilly/mdoutput/emulation"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/screenshot"
	"github.com/jetsetilly/mdoutput/userinput"
)

// the filter lists selected in turn by the next filter hotkey
var filterCycle = []string{"stretch", "scale", "scale,stretch", "off"}

// eventHandler services all pending events without blocking
func (pm *Playmode) eventHandler() error {
	for {
		select {
		case <-pm.intChan:
			logger.Log(logger.Allow, "playmode", "interrupted")
			pm.state = emulation.Ending
			return nil

		case ev := <-pm.userinput:
			if _, err := userinput.HandleUserInput(ev, pm); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

// HandleAction implements the userinput.HandleInput interface.
func (pm *Playmode) HandleAction(a userinput.Action) error {
	switch a {
	case userinput.ActionQuit:
		return pm.SetFeature(emulation.ReqQuit)

	case userinput.ActionPause:
		return pm.SetFeature(emulation.ReqSetPause, pm.state != emulation.Paused)

	case userinput.ActionScreenshot:
		pm.screenshot(false)

	case userinput.ActionRawScreenshot:
		pm.screenshot(true)

	case userinput.ActionNextFilter:
		return pm.nextFilter()

	case userinput.ActionToggleAspect:
		p := pm.drv.Preferences()
		return p.Aspect.Set(!p.Aspect.Get().(bool))

	case userinput.ActionToggleRegion:
		video := emulation.PAL
		if pm.engine.Video().PAL {
			video = emulation.NTSC
		}
		return pm.SetFeature(emulation.ReqSetVideo, video)

	case userinput.ActionToggleOverlay:
		if pm.overlay == nil {
			logger.Log(logger.Allow, "playmode", "display has no overlay")
			return nil
		}
		pm.overlay.SetOverlay(!pm.overlay.Overlay())
	}

	return nil
}

// nextFilter selects the filter list following the current one in the cycle.
// a list not in the cycle is replaced by the first entry
func (pm *Playmode) nextFilter() error {
	p := pm.drv.Preferences()

	next := filterCycle[0]
	current := p.Filters.String()
	for i, l := range filterCycle {
		if l == current {
			next = filterCycle[(i+1)%len(filterCycle)]
			break
		}
	}

	if err := p.Filters.Set(next); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "playmode", "filters: %s", next)

	return nil
}

// screenshot failures are logged and do not stop the emulation
func (pm *Playmode) screenshot(raw bool) {
	img, err := pm.drv.Screenshot(raw)
	if err != nil {
		logger.Logf(logger.Allow, "playmode", "screenshot: %v", err)
		return
	}

	name := "screenshot"
	if raw {
		name = "raw"
	}

	fn, err := screenshot.SaveUnique(img, name, pm.ScreenshotFormat)
	if err != nil {
		logger.Logf(logger.Allow, "playmode", "screenshot: %v", err)
		return
	}

	logger.Logf(logger.Allow, "playmode", "screenshot saved to %s", fn)
}
