package core

// Action is a decoded player intent, abstracted from raw key bytes.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // ESC [ A
	ActionDown         // ESC [ B
	ActionRight        // ESC [ C
	ActionLeft         // ESC [ D
	ActionQuit         // q
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
	case ActionRight:
		return "Right"
	case ActionLeft:
		return "Left"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a movement action to its heading.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionRight:
		return DirRight, true
	case ActionLeft:
		return DirLeft, true
	default:
		return 0, false
	}
}

// InputFrame holds the actions read during one loop iteration.
type InputFrame struct {
	Actions map[Action]bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the heading requested this frame, if any.
func (f InputFrame) Direction() (Direction, bool) {
	for _, a := range []Action{ActionUp, ActionDown, ActionRight, ActionLeft} {
		if f.Has(a) {
			return a.Direction()
		}
	}
	return 0, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
