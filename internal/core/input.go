package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, W, Up - edge-triggered jump
	ActionLeft         // A, Left - held to move left
	ActionRight        // D, Right - held to move right
	ActionDown         // S, Down - held to push down
	ActionStart        // Enter - start a run if none is active
	ActionReset        // R - restart the run unconditionally
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is level-triggered.
func (a Action) IsMovement() bool {
	return a == ActionLeft || a == ActionRight || a == ActionDown
}

// InputFrame represents the edge-triggered actions for a single tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// HeldKeys tracks which movement actions are currently held down.
//
// Windowed front ends feed it real key-down/key-up events. Terminals only
// report presses, so there a key counts as held until no repeat has been
// seen for the hold timeout; see Expire.
type HeldKeys struct {
	pressed   map[Action]time.Time
	timeout   time.Duration
	exclusive bool // a horizontal press releases the opposite direction
}

// NewHeldKeys creates an empty tracker for press-only input. A zero timeout
// disables expiry. Terminals never report the first key's release when a
// second key starts repeating, so a horizontal press releases the opposite
// direction.
func NewHeldKeys(timeout time.Duration) *HeldKeys {
	return &HeldKeys{
		pressed:   make(map[Action]time.Time),
		timeout:   timeout,
		exclusive: true,
	}
}

// NewKeyState creates a tracker fed by real key-down/key-up events. Keys
// never expire and opposite directions may be held together.
func NewKeyState() *HeldKeys {
	return &HeldKeys{pressed: make(map[Action]time.Time)}
}

// Press records a key-down (or a key repeat) for the action.
// For press-only trackers a horizontal direction releases the opposite one.
func (h *HeldKeys) Press(a Action, now time.Time) {
	if h.exclusive {
		switch a {
		case ActionLeft:
			delete(h.pressed, ActionRight)
		case ActionRight:
			delete(h.pressed, ActionLeft)
		}
	}
	h.pressed[a] = now
}

// Release records a key-up.
func (h *HeldKeys) Release(a Action) {
	delete(h.pressed, a)
}

// ReleaseAll forgets every held key.
func (h *HeldKeys) ReleaseAll() {
	for a := range h.pressed {
		delete(h.pressed, a)
	}
}

// Expire releases keys whose last press is older than the timeout.
func (h *HeldKeys) Expire(now time.Time) {
	if h.timeout <= 0 {
		return
	}
	for a, at := range h.pressed {
		if now.Sub(at) >= h.timeout {
			delete(h.pressed, a)
		}
	}
}

// Held reports whether the action is currently held.
func (h *HeldKeys) Held(a Action) bool {
	_, ok := h.pressed[a]
	return ok
}

// Len returns the number of held actions.
func (h *HeldKeys) Len() int {
	return len(h.pressed)
}
