package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W - flap while running, restart after game over
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Esc, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the drained batch of input observed between two ticks.
// Actions are a set; pointer presses keep arrival order and are already
// converted to world coordinates by the frontend.
type InputFrame struct {
	Actions  map[Action]bool
	Pointers []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Press records a pointer press at p.
func (f *InputFrame) Press(p Point) {
	f.Pointers = append(f.Pointers, p)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Pressed reports whether any pointer press happened this frame.
func (f InputFrame) Pressed() bool {
	return len(f.Pointers) > 0
}

// PressedIn reports whether any pointer press this frame landed inside r.
func (f InputFrame) PressedIn(r Rect) bool {
	for _, p := range f.Pointers {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointers) == 0
}

// Clear resets the frame for reuse on the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}
