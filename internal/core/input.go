package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the controller to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - nudge paddle up
	ActionDown          // S, Down arrow - nudge paddle down
	ActionLaunch        // Space, Enter, mouse click - serve the ball
	ActionPause         // P, Escape - pause/unpause
	ActionHelp          // ? - toggle full help
	ActionRallies       // Tab - toggle the rally table
	ActionQuit          // Q, Ctrl+C - exit
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
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionRallies:
		return "Rallies"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
