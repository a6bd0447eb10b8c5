package canbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/auto-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: 1}
}

func key(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func command(line string) core.InputFrame {
	in := core.NewInputFrame()
	in.Submit(line)
	return in
}

func playingGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	require.False(t, g.AcceptsText())

	res := g.Step(key(core.ActionJump))
	require.Equal(t, core.PhasePlaying, res.State.Phase)
	require.True(t, g.AcceptsText())
	return g
}

func lastEntry(g *Game) Entry {
	entries := g.log.Entries()
	return entries[len(entries)-1]
}

func TestStartShowsMapping(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	assert.Equal(t, core.PhaseStart, g.State().Phase)
	assert.True(t, g.showMapping)

	res := g.Step(command("send 0x201 1"))
	assert.Equal(t, core.PhaseStart, res.State.Phase, "commands are ignored before the start")
	assert.Equal(t, Off, g.car.Headlights)

	res = g.Step(key(core.ActionJump))
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.False(t, g.showMapping)
	assert.Equal(t, 0, res.State.Score)
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventStarted, res.Events[0].Kind)
}

func TestElapsedTimeStartsAtLaunch(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for range 600 {
		g.Step(core.NewInputFrame())
	}
	g.Step(key(core.ActionJump))

	started := lastEntry(g)
	assert.Equal(t, 0, started.Tick)
	assert.Contains(t, started.Text(60), "[+00:00]")

	for range 60 {
		g.Step(core.NewInputFrame())
	}
	g.Step(command("send 0x201 1"))
	var sent Entry
	for _, e := range g.log.Entries() {
		if !e.IsSystem() {
			sent = e
		}
	}
	assert.Equal(t, 61, sent.Tick)
	assert.Contains(t, sent.Text(60), "[+00:01]")
}

func TestValidCommandUpdatesCar(t *testing.T) {
	g := playingGame(t)
	before := g.log.Len()

	res := g.Step(command("send 0x201 01"))

	assert.Equal(t, On, g.car.Headlights)
	assert.Equal(t, 1, res.State.Score, "first mission is turning on the headlights")
	require.Equal(t, before+2, g.log.Len())
	assert.Equal(t, Frame{ID: 0x201, Data: 1}, g.log.Entries()[before].Frame)
	assert.Equal(t, "Mission completed: Turn on headlights", lastEntry(g).System)
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventMission, res.Events[0].Kind)
}

func TestUnknownIDIsLoggedThenRejected(t *testing.T) {
	g := playingGame(t)
	before := g.log.Len()

	res := g.Step(command("send 0x999 1"))

	require.Equal(t, before+2, g.log.Len())
	assert.Equal(t, 0x999, g.log.Entries()[before].Frame.ID)
	assert.Equal(t, "Invalid command!", lastEntry(g).System)
	assert.ErrorIs(t, g.lastErr, ErrUnknownID)
	assert.Equal(t, g.cfg.ErrorTicks, g.errorLeft)
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventRejected, res.Events[0].Kind)
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
}

func TestMalformedCommandIsNotLoggedAsFrame(t *testing.T) {
	g := playingGame(t)
	before := g.log.Len()

	g.Step(command("go 1 2"))

	require.Equal(t, before+1, g.log.Len())
	assert.True(t, lastEntry(g).IsSystem())
	assert.ErrorIs(t, g.lastErr, ErrInvalidCommand)
}

func TestInvalidValueRejected(t *testing.T) {
	g := playingGame(t)

	g.Step(command("send 0x101 7"))

	assert.ErrorIs(t, g.lastErr, ErrInvalidValue)
	assert.Equal(t, NewCarState(), g.car)
	assert.Positive(t, g.errorLeft)
}

func TestBlankCommandIgnored(t *testing.T) {
	g := playingGame(t)
	before := g.log.Len()

	res := g.Step(command("   "))

	assert.Empty(t, res.Events)
	assert.Equal(t, before, g.log.Len())
	assert.Zero(t, g.errorLeft)
}

func TestErrorPopupDuration(t *testing.T) {
	g := playingGame(t)
	require.Equal(t, 120, g.cfg.ErrorTicks)

	g.Step(command("send 0x201 9"))
	for i := range g.cfg.ErrorTicks - 1 {
		g.Step(core.NewInputFrame())
		assert.Positive(t, g.popupScale(), "tick %d", i)
	}

	g.Step(core.NewInputFrame())
	assert.Zero(t, g.popupScale())
}

func TestErrorScale(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{0.15, 0.6},
		{0.3, 1.2},
		{0.4, 1.1},
		{0.5, 1.0},
		{1.9, 1.0},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, errorScale(tc.elapsed), 1e-9, "elapsed %.2f", tc.elapsed)
	}
}

func TestAllMissionsEndRun(t *testing.T) {
	g := playingGame(t)
	commands := []string{
		"send 0x201 1",
		"send 0x101 0",
		"send 0x101 3",
		"send 0x301 1",
		"send 0x401 1",
		"send 0x201 0",
	}

	var res core.StepResult
	for i, c := range commands {
		res = g.Step(command(c))
		assert.Equal(t, i+1, res.State.Score, c)
	}

	assert.True(t, res.State.GameOver)
	assert.False(t, g.AcceptsText())
	assert.Equal(t, "All missions completed! You won!", lastEntry(g).System)

	var kinds []core.EventKind
	for _, e := range res.Events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []core.EventKind{core.EventMission, core.EventGameOver}, kinds)
}

func TestOnlyCurrentMissionIsChecked(t *testing.T) {
	g := playingGame(t)

	g.Step(command("send 0x301 1"))
	assert.Equal(t, 0, g.State().Score, "locking first does not skip ahead")

	g.Step(command("send 0x201 1"))
	g.Step(command("send 0x101 0"))
	g.Step(command("send 0x101 3"))
	require.Equal(t, 3, g.State().Score)

	// Doors are already locked, but the mission is only checked after the
	// next accepted frame.
	g.Step(core.NewInputFrame())
	assert.Equal(t, 3, g.State().Score)

	g.Step(command("send 0x201 1"))
	assert.Equal(t, 4, g.State().Score)
}

func TestMappingOverlayDuringPlay(t *testing.T) {
	g := playingGame(t)

	g.Step(key(core.ActionHelp))
	assert.True(t, g.showMapping)
	assert.False(t, g.AcceptsText())

	g.Step(command("send 0x201 1"))
	assert.Equal(t, Off, g.car.Headlights, "commands are ignored while the overlay is open")

	g.Step(key(core.ActionJump))
	assert.False(t, g.showMapping)
	assert.True(t, g.AcceptsText())
}

func TestRestartAfterVictory(t *testing.T) {
	g := playingGame(t)
	for _, c := range []string{"send 0x201 1", "send 0x101 0", "send 0x101 3", "send 0x301 1", "send 0x401 1", "send 0x201 0"} {
		g.Step(command(c))
	}
	require.True(t, g.State().GameOver)

	res := g.Step(command("send 0x201 1"))
	assert.True(t, res.State.GameOver)

	res = g.Step(key(core.ActionRestart))
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, NewCarState(), g.car)
	assert.Equal(t, 2, g.log.Len())
	assert.True(t, g.AcceptsText())
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 23)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "CAN BUS MAPPINGS")
	assert.Contains(t, out, "0x201 -> Headlights")
	assert.Contains(t, out, "Mission 1: Turn on headlights")

	g.Step(key(core.ActionJump))
	g.Step(command("send 0x999 1"))
	for range 40 {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "INVALID COMMAND!")
	assert.Contains(t, out, "ID: 0x999 Data: 01")
}
