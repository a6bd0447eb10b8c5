package asil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func playingGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	res := g.Step(press(core.ActionJump))
	require.Equal(t, core.PhasePlaying, res.State.Phase)
	return g
}

func block(g *Game, x float64, lvl Level) Block {
	return Block{
		X:    x,
		Y:    g.car.Bottom() - g.cfg.Blocks.Height,
		W:    g.cfg.Blocks.Width,
		H:    g.cfg.Blocks.Height,
		Func: Functionality{Name: "Test " + lvl.String(), Level: lvl},
	}
}

func TestStartTransition(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	assert.Equal(t, core.PhaseStart, g.State().Phase)

	res := g.Step(press(core.ActionLevelA))
	assert.Equal(t, core.PhaseStart, res.State.Phase, "level keys are ignored on the start screen")
	assert.Empty(t, res.Events)

	res = g.Step(press(core.ActionJump))
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.Equal(t, 0, res.State.Score)
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventStarted, res.Events[0].Kind)
	assert.Equal(t, "start", res.Events[0].Detail)
}

func TestCorrectKeyConsumesFirstBlockInBand(t *testing.T) {
	g := playingGame(t)
	g.blocks = []Block{block(g, 50, LevelD), block(g, 20, LevelA), block(g, 26, LevelB)}

	res := g.Step(press(core.ActionLevelA))

	assert.Equal(t, 1, res.State.Score)
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	require.Len(t, g.blocks, 2)
	assert.Equal(t, LevelD, g.blocks[0].Func.Level)
	assert.Equal(t, LevelB, g.blocks[1].Func.Level)
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventScored, res.Events[0].Kind)
}

func TestWrongKeyEndsRun(t *testing.T) {
	g := playingGame(t)
	g.blocks = []Block{block(g, 20, LevelD), block(g, 26, LevelB)}

	res := g.Step(press(core.ActionLevelB))

	assert.True(t, res.State.GameOver)
	assert.Equal(t, core.PhaseGameOver, res.State.Phase)
	require.NotNil(t, g.ending)
	assert.True(t, g.ending.wrong)
	assert.Equal(t, LevelD, g.ending.block.Func.Level)
	assert.Equal(t, LevelB, g.ending.pressed)
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventGameOver, res.Events[0].Kind)
}

func TestKeyOutsideBandHasNoEffect(t *testing.T) {
	g := playingGame(t)
	g.blocks = []Block{block(g, 60, LevelD)}

	res := g.Step(press(core.ActionLevelA))

	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.Equal(t, 0, res.State.Score)
	assert.Len(t, g.blocks, 1)
	assert.Equal(t, g.cfg.KeyCooldown, g.cooldown, "any level key starts the cooldown")
}

func TestKeyCooldown(t *testing.T) {
	g := playingGame(t)
	g.blocks = []Block{block(g, 18, LevelA), block(g, 26, LevelA)}
	require.Equal(t, 12, g.cfg.KeyCooldown)

	g.Step(press(core.ActionLevelA))
	require.Equal(t, 1, g.score)

	g.Step(press(core.ActionLevelA))
	assert.Equal(t, 1, g.score, "repeat inside the cooldown is ignored")

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	g.Step(press(core.ActionLevelA))
	assert.Equal(t, 2, g.score)
	assert.Empty(t, g.blocks)
}

func TestCollisionEndsRunOnce(t *testing.T) {
	g := playingGame(t)
	a := block(g, 15.1, LevelC)
	b := block(g, 15.2, LevelQM)
	g.blocks = []Block{a, b}

	res := g.Step(core.NewInputFrame())

	assert.True(t, res.State.GameOver)
	require.NotNil(t, g.ending)
	assert.False(t, g.ending.wrong)
	assert.Equal(t, LevelC, g.ending.block.Func.Level)

	var overs int
	for _, e := range res.Events {
		if e.Kind == core.EventGameOver {
			overs++
		}
	}
	assert.Equal(t, 1, overs, "simultaneous collisions end the run once")
}

func TestTouchingEdgeIsNotCollision(t *testing.T) {
	g := playingGame(t)
	g.blocks = []Block{block(g, float64(g.car.Right())+0.5, LevelA)}

	res := g.Step(core.NewInputFrame())

	assert.Equal(t, core.PhasePlaying, res.State.Phase)
}

func TestOffScreenBlocksPruned(t *testing.T) {
	g := playingGame(t)
	w := float64(g.cfg.Blocks.Width)
	g.blocks = []Block{block(g, -w+0.1, LevelA), block(g, 40, LevelB)}

	g.Step(core.NewInputFrame())

	require.Len(t, g.blocks, 1)
	assert.Equal(t, LevelB, g.blocks[0].Func.Level)
	for _, b := range g.blocks {
		assert.GreaterOrEqual(t, b.Rect().Right(), 0)
	}
}

func TestSpawnAtRightEdge(t *testing.T) {
	g := playingGame(t)

	for range g.cfg.Blocks.SpawnEvery - 1 {
		g.Step(core.NewInputFrame())
	}
	assert.Empty(t, g.blocks)

	g.Step(core.NewInputFrame())
	require.Len(t, g.blocks, 1)

	b := g.blocks[0]
	assert.Less(t, b.X, float64(g.runtime.ScreenW))
	assert.Greater(t, b.X, float64(g.runtime.ScreenW)-1)
	assert.Equal(t, g.car.Bottom(), b.Rect().Bottom(), "blocks are bottom-aligned with the car")
	assert.Contains(t, g.catalogue, b.Func)
}

func TestRestartResetsScore(t *testing.T) {
	g := playingGame(t)
	g.blocks = []Block{block(g, 20, LevelA)}
	g.Step(press(core.ActionLevelA))
	require.Equal(t, 1, g.score)

	g.blocks = []Block{block(g, 20, LevelD)}
	for range g.cfg.KeyCooldown {
		g.Step(core.NewInputFrame())
	}
	res := g.Step(press(core.ActionLevelQM))
	require.True(t, res.State.GameOver)
	assert.Equal(t, 1, res.State.Score, "score survives into game over")

	res = g.Step(press(core.ActionLevelA))
	assert.True(t, res.State.GameOver, "level keys do not restart")

	res = g.Step(press(core.ActionRestart))
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.Equal(t, 0, res.State.Score)
	assert.Empty(t, g.blocks)
	assert.Nil(t, g.ending)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "restart", res.Events[0].Detail)
}

func TestScoreNonDecreasingWhilePlaying(t *testing.T) {
	g := playingGame(t)
	last := 0
	for i := range 2000 {
		in := core.NewInputFrame()
		// Answer whatever is first in the band with the right level.
		for _, b := range g.blocks {
			if g.inBand(b) {
				in.Set(core.LevelActions[(int(b.Func.Level)+4)%5])
				break
			}
		}
		res := g.Step(in)
		if !res.State.GameOver {
			assert.GreaterOrEqual(t, res.State.Score, last, "tick %d", i)
		}
		last = res.State.Score
		if res.State.GameOver {
			break
		}
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := playingGame(t)
	g.blocks = []Block{block(g, 40, LevelA)}

	res := g.Step(press(core.ActionPause))
	require.True(t, res.State.Paused)

	for range 30 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 40.0, g.blocks[0].X)

	res = g.Step(press(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Less(t, g.blocks[0].X, 40.0)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"A", LevelA}, {"b", LevelB}, {" C ", LevelC}, {"d", LevelD}, {"Q", LevelQM}, {"qm", LevelQM},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("E")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNewCatalogue(t *testing.T) {
	cat, err := NewCatalogue(config.DefaultAsilConfig().Functionalities)
	require.NoError(t, err)
	assert.Len(t, cat, 25)

	_, err = NewCatalogue([]config.Functionality{{Name: "Wipers", Level: "Z"}})
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestBlockLines(t *testing.T) {
	b := Block{Func: Functionality{Name: "Electronic Stability Control"}}
	assert.Equal(t, []string{"Electronic", "Stability Control"}, b.Lines())

	b.Func.Name = "Power Steering"
	assert.Equal(t, []string{"Power Steering"}, b.Lines())
}

func TestLevelActionsMapToLevels(t *testing.T) {
	// The score test relies on this ordering.
	want := []Level{LevelA, LevelB, LevelC, LevelD, LevelQM}
	for i, a := range core.LevelActions {
		lvl, ok := levelFor(a)
		require.True(t, ok)
		assert.Equal(t, want[i], lvl)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), "Press SPACE to start!")

	g.Step(press(core.ActionJump))
	g.blocks = []Block{block(g, 20, LevelD)}
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Test D")
	assert.Contains(t, out, "Detection Zone")

	g.Step(press(core.ActionLevelA))
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.True(t, strings.Contains(out, "Test D is ASIL D, you pressed A"))
}
