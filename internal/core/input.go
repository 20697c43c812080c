package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W - flap, or start from the menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Esc, Ctrl+C - leave the program
	ActionPause          // P - pause/unpause while playing
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
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// Setting an action twice is the same as setting it once, so several jump
// presses inside one tick collapse into a single jump.
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
	if a == ActionNone {
		return
	}
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// InputPoller is a non-blocking source of actions. Poll returns
// (ActionNone, false) immediately when nothing is pending.
type InputPoller interface {
	PollInput() (Action, bool)
}

// DrainInput collects every pending action from p into one frame.
// It never blocks.
func DrainInput(p InputPoller) InputFrame {
	frame := NewInputFrame()
	for {
		a, ok := p.PollInput()
		if !ok {
			return frame
		}
		frame.Set(a)
	}
}

// ActionQueue is a FIFO of actions filled by an event source and drained
// once per tick. It is not safe for concurrent use.
type ActionQueue struct {
	pending []Action
}

// Push appends an action. ActionNone is dropped.
func (q *ActionQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// PollInput pops the oldest action without blocking.
func (q *ActionQueue) PollInput() (Action, bool) {
	if len(q.pending) == 0 {
		return ActionNone, false
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return a, true
}

// Len returns the number of pending actions.
func (q *ActionQueue) Len() int {
	return len(q.pending)
}
