package core

import "sort"

// Action represents a semantic game action, abstracted from physical key presses.
// Platform layers translate their own key names into actions so the game
// never sees raw key strings.
type Action int

const (
	ActionNone           Action = iota
	ActionMoveUp                // W, Up arrow
	ActionMoveDown              // S, Down arrow
	ActionMoveLeft              // A, Left arrow
	ActionMoveRight             // D, Right arrow
	ActionPause                 // P - pause/resume
	ActionRestart               // R - back to ready state
	ActionConfirm               // Enter - play/resume
	ActionQuit                  // Q, Ctrl+C - exit
	ActionSpeedUp               // + / =
	ActionSpeedDown             // -
	ActionAreaUp                // ]
	ActionAreaDown              // [
	ActionToggleStatic          // L - static level on/off
	ActionResetHighScore        // H
)

var actionNames = map[Action]string{
	ActionNone:           "None",
	ActionMoveUp:         "MoveUp",
	ActionMoveDown:       "MoveDown",
	ActionMoveLeft:       "MoveLeft",
	ActionMoveRight:      "MoveRight",
	ActionPause:          "Pause",
	ActionRestart:        "Restart",
	ActionConfirm:        "Confirm",
	ActionQuit:           "Quit",
	ActionSpeedUp:        "SpeedUp",
	ActionSpeedDown:      "SpeedDown",
	ActionAreaUp:         "AreaUp",
	ActionAreaDown:       "AreaDown",
	ActionToggleStatic:   "ToggleStatic",
	ActionResetHighScore: "ResetHighScore",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered since the last time the frame
// was consumed.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame holding the given actions.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
// ActionNone is ignored.
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

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// List returns the triggered actions in enum order.
func (f InputFrame) List() []Action {
	out := make([]Action, 0, len(f.Actions))
	for a, v := range f.Actions {
		if v {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
