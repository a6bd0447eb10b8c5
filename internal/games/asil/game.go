// Package asil implements ASIL Highway: Dash or Crash. Functionality
// blocks drive towards the player's car and the player must name each
// block's safety integrity level before it arrives.
package asil

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/core"
	"github.com/vovakirdan/auto-arcade/internal/registry"
)

// Visual characters for rendering
const (
	GroundChar = '═'
	BodyChar   = '█'
	WheelChar  = '◉'
	ZoneChar   = '┆'
)

// Game implements the ASIL matching game.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.AsilConfig
	catalogue  []Functionality
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	fsm        core.Machine
	spawner    *core.Spawner

	car      core.Rect
	blocks   []Block
	score    int
	paused   bool
	cooldown int // ticks until the next level key is accepted
	ticks    int // ticks since the run started
	ending   *ending
}

// ending records why the last run stopped.
type ending struct {
	block   Block
	pressed Level
	wrong   bool // false means the block hit the car
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// ValidateConfig loads the config at path and checks its catalogue.
func ValidateConfig(path string) error {
	cfg, err := config.LoadAsil(path)
	if err != nil {
		return err
	}
	_, err = NewCatalogue(cfg.Functionalities)
	return err
}

// loadConfig never fails: a broken config falls back to the defaults.
func loadConfig() (config.AsilConfig, []Functionality) {
	cfg, err := config.LoadAsil(configPath)
	if err != nil {
		cfg = config.DefaultAsilConfig()
	}
	cat, err := NewCatalogue(cfg.Functionalities)
	if err != nil {
		cfg = config.DefaultAsilConfig()
		cat, _ = NewCatalogue(cfg.Functionalities)
	}
	cfg.Difficulty.Apply(difficultyPreset)
	return cfg, cat
}

// New creates a new ASIL game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asil"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "ASIL Highway: Dash or Crash"
}

// Reset loads the configuration and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg, g.catalogue = loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = core.NewSpawner(g.cfg.Blocks.SpawnEvery, g.cfg.Blocks.SpawnEvery, 0)

	carY := runtime.ScreenH - g.cfg.Car.GroundOffset - g.cfg.Car.Height
	g.car = core.NewRect(g.cfg.Car.X, carY, g.cfg.Car.Width, g.cfg.Car.Height)

	g.fsm.Reset()
	g.clearRun()
}

func (g *Game) clearRun() {
	g.blocks = g.blocks[:0]
	g.spawner.Reset()
	g.score = 0
	g.paused = false
	g.cooldown = 0
	g.ticks = 0
	g.ending = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if !g.fsm.Playing() {
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) ||
			(g.fsm.Over() && in.Has(core.ActionRestart)) {
			events = g.launch(events)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	if g.cooldown > 0 {
		g.cooldown--
	}

	if lvl, ok := pressedLevel(in); ok && g.cooldown == 0 {
		g.cooldown = g.cfg.KeyCooldown
		events = g.judge(lvl, events)
		if g.fsm.Over() {
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	events = g.advance(events)
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) launch(events []core.Event) []core.Event {
	detail := "start"
	if g.fsm.Over() {
		detail = "restart"
	}
	if !g.fsm.Launch() {
		return events
	}
	g.clearRun()
	return append(events, core.Event{Kind: core.EventStarted, Detail: detail})
}

// pressedLevel returns the first level key in the frame.
func pressedLevel(in core.InputFrame) (Level, bool) {
	for _, a := range core.LevelActions {
		if in.Has(a) {
			return levelFor(a)
		}
	}
	return 0, false
}

// inBand reports whether the block's left edge lies inside the detection band.
func (g *Game) inBand(b Block) bool {
	x := b.Rect().X
	return x >= g.car.X-g.cfg.Detection.Behind && x <= g.car.X+g.cfg.Detection.Ahead
}

// judge checks a level key against the first block in the band.
func (g *Game) judge(pressed Level, events []core.Event) []core.Event {
	for i, b := range g.blocks {
		if !g.inBand(b) {
			continue
		}
		if b.Func.Level == pressed {
			g.blocks = slices.Delete(g.blocks, i, i+1)
			g.score++
			return append(events, core.Event{Kind: core.EventScored, Detail: b.Func.Name})
		}
		g.ending = &ending{block: b, pressed: pressed, wrong: true}
		return g.end(events, fmt.Sprintf("%s is %s, pressed %s", b.Func.Name, b.Func.Level, pressed))
	}
	return events
}

// advance spawns, moves and prunes blocks, then checks the car.
func (g *Game) advance(events []core.Event) []core.Event {
	if g.spawner.Tick() {
		g.spawn()
	}

	speed := g.difficulty.Speed(g.cfg.Blocks.Speed, g.score, g.ticks)
	for i := range g.blocks {
		g.blocks[i].X -= speed
	}
	g.blocks = core.Prune(g.blocks, Block.Rect)

	for _, b := range g.blocks {
		if !b.Rect().Intersects(g.car) {
			continue
		}
		if g.ending == nil {
			g.ending = &ending{block: b}
		}
		events = g.end(events, "collision with "+b.Func.Name)
	}
	return events
}

func (g *Game) end(events []core.Event, detail string) []core.Event {
	if !g.fsm.End() {
		return events
	}
	return append(events, core.Event{Kind: core.EventGameOver, Detail: detail})
}

// spawn adds a block at the right edge, bottom-aligned with the car.
func (g *Game) spawn() {
	f := g.catalogue[g.rng.Intn(len(g.catalogue))]
	g.blocks = append(g.blocks, Block{
		X:    float64(g.runtime.ScreenW),
		Y:    g.car.Bottom() - g.cfg.Blocks.Height,
		W:    g.cfg.Blocks.Width,
		H:    g.cfg.Blocks.Height,
		Func: f,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.fsm.Phase(),
		GameOver: g.fsm.Over(),
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("asil", func() registry.Game {
		return New()
	})
}
