package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24, 60 Hz configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TicksFor converts a duration in milliseconds to ticks at the configured
// rate, never returning less than one tick.
func (c RuntimeConfig) TicksFor(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return max(1, ms*rate/1000)
}

// GameState summarises a game for the platform.
type GameState struct {
	Score    int
	Phase    Phase
	GameOver bool // Phase == PhaseGameOver
	Paused   bool
}

// EventKind classifies things that happened during a tick.
type EventKind int

const (
	EventStarted  EventKind = iota // a run started or restarted
	EventScored                    // the score went up
	EventGameOver                  // the run ended
	EventRejected                  // player input was rejected
	EventMission                   // a mission was completed
)

var eventNames = [...]string{"started", "scored", "game_over", "rejected", "mission"}

// String returns the event kind as a log-friendly token.
func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a notable occurrence reported by Step.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by every simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
