package core

// Action is a semantic player intent, decoupled from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionLeft
	ActionDown
	ActionRight
	ActionReset
	ActionHint
	ActionScreenshot
	ActionHelp
	ActionBack
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionLeft:       "Left",
	ActionDown:       "Down",
	ActionRight:      "Right",
	ActionReset:      "Reset",
	ActionHint:       "Hint",
	ActionScreenshot: "Screenshot",
	ActionHelp:       "Help",
	ActionBack:       "Back",
	ActionQuit:       "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Input returns the automaton input symbol for gameplay actions.
// ok is false for actions the level automaton never sees.
func (a Action) Input() (in string, ok bool) {
	switch a {
	case ActionUp:
		return "W", true
	case ActionLeft:
		return "A", true
	case ActionDown:
		return "S", true
	case ActionRight:
		return "D", true
	case ActionReset:
		return "R", true
	default:
		return "", false
	}
}
