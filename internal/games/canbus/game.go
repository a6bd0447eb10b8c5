// Package canbus implements the CAN Bus Puzzle: the player completes
// missions by typing CAN frames that switch parts of a car on and off.
package canbus

import (
	"strings"

	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/core"
	"github.com/vovakirdan/auto-arcade/internal/registry"
)

// Game implements the CAN bus puzzle.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.CanBusConfig
	bus      BusMap
	missions []Mission
	fsm      core.Machine

	car         CarState
	log         *BusLog
	current     int  // index of the mission being played
	showMapping bool // the id table overlay is open
	errorLeft   int  // ticks the error popup stays up
	lastErr     error
	ticks       int
}

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

type setup struct {
	cfg      config.CanBusConfig
	bus      BusMap
	missions []Mission
}

func loadSetup(path string) (setup, error) {
	cfg, err := config.LoadCanBus(path)
	if err != nil {
		return setup{}, err
	}
	bus, err := NewBusMap(cfg.BusIDs)
	if err != nil {
		return setup{}, err
	}
	missions, err := NewMissions(cfg.Missions)
	if err != nil {
		return setup{}, err
	}
	return setup{cfg: cfg, bus: bus, missions: missions}, nil
}

// ValidateConfig loads the config at path and checks ids and missions.
func ValidateConfig(path string) error {
	_, err := loadSetup(path)
	return err
}

// New creates a new CAN bus puzzle instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "canbus"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "CAN Bus Puzzle"
}

// Reset loads the configuration and shows the id table.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	s, err := loadSetup(configPath)
	if err != nil {
		cfg := config.DefaultCanBusConfig()
		s.cfg = cfg
		s.bus, _ = NewBusMap(cfg.BusIDs)
		s.missions, _ = NewMissions(cfg.Missions)
	}
	g.cfg, g.bus, g.missions = s.cfg, s.bus, s.missions
	g.log = NewBusLog(g.cfg.LogSize)

	g.fsm.Reset()
	g.clearRun()
	g.showMapping = true
}

func (g *Game) clearRun() {
	g.car = NewCarState()
	g.log.Clear()
	g.current = 0
	g.errorLeft = 0
	g.lastErr = nil
	g.ticks = 0
	g.system("System initialized")
}

// AcceptsText reports whether typed commands are being read.
func (g *Game) AcceptsText() bool {
	return g.fsm.Playing() && !g.showMapping
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.fsm.Phase() {
	case core.PhaseStart:
		g.ticks++
		if in.Has(core.ActionJump) && g.fsm.Start() {
			g.ticks = 0
			g.showMapping = false
			g.system("Game started! Good luck with your missions!")
			events = append(events, core.Event{Kind: core.EventStarted, Detail: "start"})
		}
		return core.StepResult{State: g.State(), Events: events}

	case core.PhaseGameOver:
		if (in.Has(core.ActionJump) || in.Has(core.ActionRestart)) && g.fsm.Restart() {
			g.clearRun()
			g.showMapping = false
			g.system("Game restarted! Good luck with your missions!")
			events = append(events, core.Event{Kind: core.EventStarted, Detail: "restart"})
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	g.ticks++
	if g.errorLeft > 0 {
		g.errorLeft--
	}

	if g.showMapping {
		if in.Has(core.ActionJump) {
			g.showMapping = false
		}
		return core.StepResult{State: g.State()}
	}

	if line := strings.TrimSpace(in.Command); line != "" {
		events = g.process(line, events)
	}
	if g.fsm.Playing() && in.Has(core.ActionHelp) {
		g.showMapping = true
	}
	return core.StepResult{State: g.State(), Events: events}
}

// process runs one typed command through parse, bus lookup and the car.
func (g *Game) process(line string, events []core.Event) []core.Event {
	frame, err := ParseCommand(line)
	if err != nil {
		return g.reject(err, events)
	}

	g.log.Add(Entry{Frame: frame, Tick: g.ticks})

	sub, err := g.bus.Lookup(frame.ID)
	if err != nil {
		return g.reject(err, events)
	}
	if err := g.car.Apply(sub, frame.Data); err != nil {
		return g.reject(err, events)
	}

	if g.current >= len(g.missions) || !g.missions[g.current].Satisfied(g.car) {
		return events
	}

	done := g.missions[g.current]
	g.current++
	g.system("Mission completed: " + done.Description)
	events = append(events, core.Event{Kind: core.EventMission, Detail: done.Description})

	if g.current == len(g.missions) {
		g.system("All missions completed! You won!")
		if g.fsm.End() {
			events = append(events, core.Event{Kind: core.EventGameOver, Detail: "all missions completed"})
		}
	}
	return events
}

func (g *Game) reject(err error, events []core.Event) []core.Event {
	g.errorLeft = g.cfg.ErrorTicks
	g.lastErr = err
	g.system("Invalid command!")
	return append(events, core.Event{Kind: core.EventRejected, Detail: err.Error()})
}

func (g *Game) system(text string) {
	g.log.Add(Entry{System: text, Tick: g.ticks})
}

// errorScale is the size of the error popup relative to its resting size:
// it grows to 1.2 over 0.3s, then settles to 1.0 by 0.5s.
func errorScale(elapsed float64) float64 {
	switch {
	case elapsed < 0:
		return 0
	case elapsed < 0.3:
		return elapsed / 0.3 * 1.2
	case elapsed < 0.5:
		return 1.2 - (elapsed-0.3)/0.2*0.2
	default:
		return 1.0
	}
}

// popupScale returns the current popup scale, or 0 when hidden.
func (g *Game) popupScale() float64 {
	if g.errorLeft <= 0 {
		return 0
	}
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	shown := g.cfg.ErrorTicks - g.errorLeft
	return errorScale(float64(shown) / float64(rate))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.current,
		Phase:    g.fsm.Phase(),
		GameOver: g.fsm.Over(),
	}
}

func init() {
	registry.Register("canbus", func() registry.Game {
		return New()
	})
}

var _ registry.TextEntry = (*Game)(nil)
