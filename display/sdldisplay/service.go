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

package sdldisplay

import (
	"github.com/jetsetilly/mdoutput/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Service checks for SDL events and forwards them over the event channel. If
// the event channel is full then events are dropped.
//
// MUST ONLY be called from the main thread.
func (dsp *Display) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if uev, ok := TranslateEvent(ev); ok {
			dsp.send(uev)
		}
	}
}

// TranslateEvent converts an SDL event to a userinput.Event. Returns false if
// the SDL event has no equivalent.
func TranslateEvent(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}, true

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Mod:    keyMod(sdl.GetModState()),
			Repeat: ev.Repeat != 0,
		}, true
	}

	return nil, false
}

// the modifier for a keyboard event. only one modifier is reported
func keyMod(state sdl.Keymod) userinput.KeyMod {
	switch {
	case state&(sdl.KMOD_LALT|sdl.KMOD_RALT) != 0:
		return userinput.KeyModAlt
	case state&(sdl.KMOD_LSHIFT|sdl.KMOD_RSHIFT) != 0:
		return userinput.KeyModShift
	case state&(sdl.KMOD_LCTRL|sdl.KMOD_RCTRL) != 0:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

func (dsp *Display) send(ev userinput.Event) {
	if dsp.events == nil {
		return
	}
	select {
	case dsp.events <- ev:
	default:
	}
}
