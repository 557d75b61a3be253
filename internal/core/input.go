package core

// Action represents a semantic game action, abstracted from physical key presses.
// Both terminal frontends translate their key events into key names and then
// into actions, so bindings live in one place.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionStart          // Enter, Space - start or restart a game
	ActionPause          // P - pause/unpause the tick driver
	ActionHistory        // Tab - toggle session history
	ActionQuit           // Q, Ctrl+C, Esc - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// keyActions maps normalized key names to actions.
// Names follow Bubble Tea's KeyMsg.String() conventions.
var keyActions = map[string]Action{
	"up":     ActionUp,
	"w":      ActionUp,
	"k":      ActionUp,
	"down":   ActionDown,
	"s":      ActionDown,
	"j":      ActionDown,
	"left":   ActionLeft,
	"a":      ActionLeft,
	"h":      ActionLeft,
	"right":  ActionRight,
	"d":      ActionRight,
	"l":      ActionRight,
	"enter":  ActionStart,
	" ":      ActionStart,
	"space":  ActionStart,
	"p":      ActionPause,
	"tab":    ActionHistory,
	"q":      ActionQuit,
	"esc":    ActionQuit,
	"ctrl+c": ActionQuit,
}

// ActionForKey returns the action bound to a key name, or ActionNone.
func ActionForKey(name string) Action {
	if a, ok := keyActions[name]; ok {
		return a
	}
	return ActionNone
}

// IsDirectional reports whether the action is one of the four movement actions.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
