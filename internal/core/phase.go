package core

// Phase is the top-level state of a game run.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Machine owns a game's phase. Only the transitions
// START->PLAYING, PLAYING->GAME_OVER and GAME_OVER->PLAYING are allowed;
// every method reports whether the transition happened.
type Machine struct {
	phase Phase
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Playing reports whether the run is in progress.
func (m *Machine) Playing() bool {
	return m.phase == PhasePlaying
}

// Over reports whether the run has ended.
func (m *Machine) Over() bool {
	return m.phase == PhaseGameOver
}

// Start moves START to PLAYING.
func (m *Machine) Start() bool {
	if m.phase != PhaseStart {
		return false
	}
	m.phase = PhasePlaying
	return true
}

// Restart moves GAME_OVER to PLAYING.
func (m *Machine) Restart() bool {
	if m.phase != PhaseGameOver {
		return false
	}
	m.phase = PhasePlaying
	return true
}

// Launch enters PLAYING from either START or GAME_OVER.
func (m *Machine) Launch() bool {
	return m.Start() || m.Restart()
}

// End moves PLAYING to GAME_OVER. Calling it again is a no-op, so several
// collisions in one tick end the run exactly once.
func (m *Machine) End() bool {
	if m.phase != PhasePlaying {
		return false
	}
	m.phase = PhaseGameOver
	return true
}

// Reset returns to START unconditionally.
func (m *Machine) Reset() {
	m.phase = PhaseStart
}
