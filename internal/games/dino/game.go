// Package dino implements a dinosaur side-scroller: the dinosaur runs on
// its own and the player jumps over cacti for as long as possible.
package dino

import (
	"fmt"

	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/core"
	"github.com/vovakirdan/auto-arcade/internal/registry"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	GroundChar = '═'
)

// Game implements the Dino Runner game logic.
type Game struct {
	playerY    float64 // Player vertical position (relative to ground, negative = up)
	playerVel  float64 // Player vertical velocity
	isGrounded bool
	obstacles  *ObstacleManager
	score      int // Tenths of a second survived
	paused     bool
	fsm        core.Machine
	runtime    core.RuntimeConfig
	cfg        config.DinoConfig
	difficulty *config.DifficultyManager
	tickCount  int // Playing ticks since the run started
	groundY    int // Y position of ground line
	legFrame   int // Animation frame for running legs
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

// ValidateConfig checks that the config at path loads.
func ValidateConfig(path string) error {
	_, err := config.LoadDino(path)
	return err
}

// New creates a new Dino Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset loads the configuration and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	cfg.Difficulty.Apply(difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.groundY = runtime.ScreenH - cfg.Player.GroundOffset
	g.obstacles = NewObstacleManager(cfg.Obstacles, runtime.ScreenW, g.groundY)

	g.fsm.Reset()
	g.clearRun()
}

func (g *Game) clearRun() {
	g.playerY = 0
	g.playerVel = 0
	g.isGrounded = true
	g.score = 0
	g.paused = false
	g.tickCount = 0
	g.legFrame = 0
	g.obstacles.Reset()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.fsm.Playing() {
		var events []core.Event
		if in.Has(core.ActionJump) || (g.fsm.Over() && in.Has(core.ActionRestart)) {
			detail := "start"
			if g.fsm.Over() {
				detail = "restart"
			}
			if g.fsm.Launch() {
				g.clearRun()
				events = append(events, core.Event{Kind: core.EventStarted, Detail: detail})
			}
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10

	if in.Has(core.ActionJump) && g.isGrounded {
		g.playerVel = g.cfg.Physics.JumpImpulse
		g.isGrounded = false
	}
	g.applyPhysics()

	g.obstacles.Update(g.speed())

	var events []core.Event
	if g.obstacles.CheckCollision(g.playerRect()) && g.fsm.End() {
		events = append(events, core.Event{Kind: core.EventGameOver, Detail: "hit a cactus"})
	}

	g.score = g.tickCount * 10 / g.tickRate()

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) applyPhysics() {
	if g.isGrounded {
		return
	}
	g.playerVel = min(g.playerVel+g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)
	g.playerY += g.playerVel

	if g.playerY >= 0 {
		g.playerY = 0
		g.playerVel = 0
		g.isGrounded = true
	}
}

func (g *Game) speed() float64 {
	return g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.score, g.tickCount)
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// playerRect returns the player's collision rectangle in screen coordinates.
func (g *Game) playerRect() core.Rect {
	// Player Y is relative to ground (negative = above ground)
	screenY := g.groundY - g.cfg.Player.Height - int(-g.playerY)
	return core.NewRect(g.cfg.Player.X, screenY, g.cfg.Player.Width, g.cfg.Player.Height)
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

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLineColor(0, g.groundY, dst.Width(), GroundChar, core.ColorGray)
	g.drawDino(dst)

	switch g.fsm.Phase() {
	case core.PhaseStart:
		g.drawStart(dst)
		return
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d", g.score),
			"Press SPACE to restart or ESC to quit")
		return
	}

	for _, c := range g.obstacles.Cacti() {
		g.drawCactus(dst, c)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.difficulty.IsEnabled() {
		levelText := fmt.Sprintf(" Spd: %.2f ", g.speed())
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}
	dst.DrawTextColor(2, dst.Height()-1, "Press SPACE to jump | P pause", core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawStart(dst *core.Screen) {
	y := max(1, dst.Height()/2-6)
	dst.DrawTextCenteredColor(y, "Run Dino Run, Jump Over Cactus", core.ColorBrightGreen)
	dst.DrawTextCentered(y+2, "Welcome to the classic endless runner!")
	dst.DrawTextCentered(y+4, "CONTROLS:")
	dst.DrawTextCentered(y+5, "SPACE - Jump over obstacles")
	dst.DrawTextCentered(y+6, "P - Pause")
	dst.DrawTextCentered(y+7, "ESC - Quit game")
	dst.DrawTextCenteredColor(y+9, "Press SPACE to Start!", core.ColorBrightRed)
}

// drawDino renders the player character.
func (g *Game) drawDino(dst *core.Screen) {
	r := g.playerRect()
	baseY := r.Y
	playerX := r.X

	// Simple dino sprite (3x3)
	//  ◆█
	// ███
	// ╱╲
	dst.Set(playerX+1, baseY, DinoHead)
	dst.Set(playerX+2, baseY, DinoBody)

	dst.Set(playerX, baseY+1, DinoBody)
	dst.Set(playerX+1, baseY+1, DinoBody)
	dst.Set(playerX+2, baseY+1, DinoBody)

	// Legs (animated when grounded)
	switch {
	case !g.isGrounded:
		dst.Set(playerX, baseY+2, DinoLeg1)
		dst.Set(playerX+1, baseY+2, DinoLeg2)
	case g.legFrame < 5:
		dst.Set(playerX, baseY+2, DinoLeg1)
		dst.Set(playerX+2, baseY+2, DinoLeg2)
	default:
		dst.Set(playerX+1, baseY+2, DinoLeg1)
		dst.Set(playerX+2, baseY+2, DinoLeg2)
	}
}

// drawCactus renders a single cactus obstacle.
func (g *Game) drawCactus(dst *core.Screen, c Cactus) {
	dst.DrawRectColor(c.Rect(g.groundY), CactusChar, core.ColorGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := 2*len(lines) + 3
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-len(l))/2, box.Y+3+2*i, l)
	}
}

func init() {
	registry.Register("dino", func() registry.Game {
		return New()
	})
}
