package core

// Action is a semantic input, decoupled from the physical key that
// produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up - primary action: start, restart, jump
	ActionConfirm        // Enter - start from a title screen
	ActionRestart        // R - restart after game over
	ActionPause          // P - toggle pause
	ActionHelp           // M - show the reference overlay
	ActionQuit           // Esc, Ctrl+C
	ActionLevelA         // A - ASIL A
	ActionLevelB         // B - ASIL B
	ActionLevelC         // C - ASIL C
	ActionLevelD         // D - ASIL D
	ActionLevelQM        // Q - quality managed
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionConfirm: "Confirm",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionHelp:    "Help",
	ActionQuit:    "Quit",
	ActionLevelA:  "LevelA",
	ActionLevelB:  "LevelB",
	ActionLevelC:  "LevelC",
	ActionLevelD:  "LevelD",
	ActionLevelQM: "LevelQM",
}

// String returns a readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// LevelActions lists the level-select actions in key order.
var LevelActions = []Action{ActionLevelA, ActionLevelB, ActionLevelC, ActionLevelD, ActionLevelQM}

// InputFrame collects everything the player did during one tick.
type InputFrame struct {
	// Actions holds the actions triggered this tick.
	Actions map[Action]bool

	// Command is a line of text submitted this tick, empty if none.
	Command string
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Submit records a submitted text line. A later submission in the same
// tick replaces the earlier one.
func (f *InputFrame) Submit(line string) {
	f.Command = line
}

// Empty reports whether nothing happened this tick.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Command == ""
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Command = ""
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Command = f.Command
	return clone
}
