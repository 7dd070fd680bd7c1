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

package userinput

// Action is the result of handling an Event.
type Action int

// List of valid actions.
const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionScreenshot
	ActionRawScreenshot
	ActionNextFilter
	ActionToggleAspect
	ActionToggleRegion
	ActionToggleOverlay
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	case ActionScreenshot:
		return "screenshot"
	case ActionRawScreenshot:
		return "raw screenshot"
	case ActionNextFilter:
		return "next filter"
	case ActionToggleAspect:
		return "toggle aspect"
	case ActionToggleRegion:
		return "toggle region"
	case ActionToggleOverlay:
		return "toggle overlay"
	}
	return "unknown"
}

// HandleInput is implemented by the type that acts on user input.
type HandleInput interface {
	HandleAction(a Action) error
}

// HandleUserInput translates the Event into an Action and forwards it to the
// handler. The Action is returned even if the handler returns an error.
func HandleUserInput(ev Event, handle HandleInput) (Action, error) {
	var a Action

	switch ev := ev.(type) {
	case EventQuit:
		a = ActionQuit
	case EventKeyboard:
		a = keyboard(ev)
	}

	if a == ActionNone {
		return a, nil
	}

	return a, handle.HandleAction(a)
}

// keyboard returns the action for a keypress. only key presses are acted upon
func keyboard(ev EventKeyboard) Action {
	if ev.Repeat || !ev.Down {
		return ActionNone
	}

	switch ev.Mod {
	case KeyModNone:
		switch ev.Key {
		case "Escape":
			return ActionQuit
		case "Pause", "P":
			return ActionPause
		case "F8":
			return ActionToggleOverlay
		case "F9":
			return ActionNextFilter
		case "F10":
			return ActionToggleAspect
		case "F11":
			return ActionToggleRegion
		case "F12":
			return ActionScreenshot
		}
	case KeyModShift:
		switch ev.Key {
		case "F12":
			return ActionRawScreenshot
		}
	case KeyModCtrl:
		switch ev.Key {
		case "Q":
			return ActionQuit
		}
	}

	return ActionNone
}
