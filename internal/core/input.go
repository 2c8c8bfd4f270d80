package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games see which actions are currently held; edge detection is their concern.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionSwap           // X, Z - swap the two blocks under the cursor
	ActionSpace          // Space - regenerate the field
	ActionRaise          // E - raise the stack
	ActionPause          // P - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session

	actionCount
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
	case ActionSwap:
		return "Swap"
	case ActionSpace:
		return "Space"
	case ActionRaise:
		return "Raise"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return a > ActionNone && a < actionCount
}

// HeldSource answers whether an action is currently held down.
// The platform layer implements it from key events; tests use InputFrame.
type HeldSource interface {
	Held(a Action) bool
}

// InputFrame represents the input state for a single player during one simulation tick.
// It records every action held during this frame.
type InputFrame struct {
	held [actionCount]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as held for this frame.
// Unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a.Valid() {
		f.held[a] = true
	}
}

// Unset releases an action.
func (f *InputFrame) Unset(a Action) {
	if a.Valid() {
		f.held[a] = false
	}
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if !a.Valid() {
		return false
	}
	return f.held[a]
}

// Held implements HeldSource.
func (f InputFrame) Held(a Action) bool {
	return f.Has(a)
}

// Clear releases all actions for the next frame.
func (f *InputFrame) Clear() {
	f.held = [actionCount]bool{}
}
