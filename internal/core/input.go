package core

// Action is a platform-level intent decoupled from the physical key.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter
	ActionBack           // B, leave the game screen
	ActionRestart        // Space, R, start a new round after it ended
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Esc

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns the action name, or "Unknown" when out of range.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirectional reports whether the action is one of the four movement actions.
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the actions pressed between two ticks. The zero value
// is an empty frame, and frames copy by value.
type InputFrame struct {
	set uint32

	// Last is the most recent directional action of the frame, so that
	// games with a single movement intent can apply last-event-wins.
	Last Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
// ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.set |= 1 << uint(a)
	if a.IsDirectional() {
		f.Last = a
	}
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.set&(1<<uint(a)) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
