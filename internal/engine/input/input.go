// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is a viewer command triggered by a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNoon
	ActionMidnight
	ActionSunrise
	ActionPause
	ActionFaster // halve the day duration
	ActionSlower // double the day duration
	ActionCapture
)

var actionNames = [...]string{"none", "quit", "noon", "midnight", "sunrise", "pause", "faster", "slower", "capture"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ActionForKey maps a scancode to its action.
func ActionForKey(sc sdl.Scancode) Action {
	switch sc {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		return ActionQuit
	case sdl.SCANCODE_N:
		return ActionNoon
	case sdl.SCANCODE_M:
		return ActionMidnight
	case sdl.SCANCODE_R:
		return ActionSunrise
	case sdl.SCANCODE_SPACE:
		return ActionPause
	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		return ActionFaster
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		return ActionSlower
	case sdl.SCANCODE_S:
		return ActionCapture
	}
	return ActionNone
}

// Input collects actions once per frame.
type Input struct {
	actions []Action
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		actions: make([]Action, 0, 8),
	}
}

// Update polls SDL events. Returns true if the window was closed.
func (i *Input) Update() bool {
	i.actions = i.actions[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if a := ActionForKey(e.Keysym.Scancode); a != ActionNone {
					i.actions = append(i.actions, a)
				}
			}
		}
	}

	return false
}

// Actions returns the actions from the last Update, in event order.
func (i *Input) Actions() []Action {
	return i.actions
}
