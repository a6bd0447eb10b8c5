package core

import "testing"

func TestMachineTransitions(t *testing.T) {
	var m Machine

	if m.Phase() != PhaseStart {
		t.Fatalf("zero Machine phase = %v, expected START", m.Phase())
	}
	if m.End() || m.Restart() {
		t.Fatal("START must only accept Start")
	}
	if !m.Start() || !m.Playing() {
		t.Fatal("Start should enter PLAYING")
	}
	if m.Start() || m.Restart() || m.Launch() {
		t.Fatal("PLAYING must not re-enter PLAYING")
	}
	if !m.End() || !m.Over() {
		t.Fatal("End should enter GAME_OVER")
	}
	if m.End() {
		t.Fatal("second End must be a no-op")
	}
	if m.Start() {
		t.Fatal("GAME_OVER must not accept Start")
	}
	if !m.Launch() || !m.Playing() {
		t.Fatal("Launch should restart from GAME_OVER")
	}

	m.Reset()
	if m.Phase() != PhaseStart {
		t.Errorf("Reset phase = %v", m.Phase())
	}
}

func TestEventKindString(t *testing.T) {
	tests := map[EventKind]string{
		EventStarted:  "started",
		EventMission:  "mission",
		EventKind(-1): "unknown",
		EventKind(99): "unknown",
	}
	for k, want := range tests {
		if k.String() != want {
			t.Errorf("%d.String() = %q, expected %q", k, k.String(), want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseStart:    "START",
		PhasePlaying:  "PLAYING",
		PhaseGameOver: "GAME_OVER",
		Phase(42):     "UNKNOWN",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("%d.String() = %q, expected %q", p, p.String(), want)
		}
	}
}
