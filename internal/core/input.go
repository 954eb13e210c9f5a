package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own key events into actions; the simulation only
// sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionStart        // Space - leave the idle screen and start a run
	ActionUp           // Up arrow, W, K
	ActionDown         // Down arrow, S, J
	ActionLeft         // Left arrow, A, H
	ActionRight        // Right arrow, D, L
	ActionScores       // Tab - toggle the session scoreboard
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the heading a directional action selects.
// ok is false for non-directional actions.
func (a Action) Direction() (d Direction, ok bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// keyActions maps key names from terminals (Bubble Tea key strings) and
// browsers (KeyboardEvent.key and KeyboardEvent.code) to actions.
var keyActions = map[string]Action{
	" ":     ActionStart,
	"space": ActionStart,

	"up":      ActionUp,
	"w":       ActionUp,
	"k":       ActionUp,
	"arrowup": ActionUp,

	"down":      ActionDown,
	"s":         ActionDown,
	"j":         ActionDown,
	"arrowdown": ActionDown,

	"left":      ActionLeft,
	"a":         ActionLeft,
	"h":         ActionLeft,
	"arrowleft": ActionLeft,

	"right":      ActionRight,
	"d":          ActionRight,
	"l":          ActionRight,
	"arrowright": ActionRight,

	"tab": ActionScores,

	"q":      ActionQuit,
	"ctrl+c": ActionQuit,
}

// ParseKey translates a key name into an action.
// Unknown keys report false and must be ignored by callers.
func ParseKey(key string) (Action, bool) {
	if key == " " {
		return ActionStart, true
	}
	a, ok := keyActions[strings.ToLower(strings.TrimSpace(key))]
	return a, ok
}
