package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A - move first paddle left
	ActionRight           // D - move first paddle right
	ActionAltLeft         // Left arrow - move second paddle left
	ActionAltRight        // Right arrow - move second paddle right
	ActionSpawn           // Space - launch a projectile from the first paddle
	ActionPause           // P - pause/unpause game
	ActionRestart         // R - restart game after the level is cleared
	ActionQuit            // Q, Esc, Ctrl+C - close request
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAltLeft:
		return "AltLeft"
	case ActionAltRight:
		return "AltRight"
	case ActionSpawn:
		return "Spawn"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were held or triggered during this frame.
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// InputState carries level-triggered input history between frames so that
// edge-triggered actions fire once per press instead of every held frame.
// It is owned by the game loop and passed explicitly; there is no hidden
// per-process state.
type InputState struct {
	prev map[Action]bool
}

// NewInputState creates an input state with nothing held.
func NewInputState() InputState {
	return InputState{prev: make(map[Action]bool)}
}

// Pressed reports whether a transitioned from released to held in frame.
// It must be called once per frame for every action it tracks.
func (s *InputState) Pressed(frame InputFrame, a Action) bool {
	if s.prev == nil {
		s.prev = make(map[Action]bool)
	}
	now := frame.Has(a)
	was := s.prev[a]
	s.prev[a] = now
	return now && !was
}

// Reset forgets all held actions.
func (s *InputState) Reset() {
	for k := range s.prev {
		delete(s.prev, k)
	}
}
