// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the platform can list
// and launch them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/auto-arcade/internal/core"
)

// Game is the contract between a game and the platform. Games are pure
// logic: the platform owns timing, key mapping and drawing to the terminal.
type Game interface {
	// ID is the unique identifier used by the CLI and the score board.
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset puts the game in its START phase for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and phase.
	State() core.GameState
}

// TextEntry is implemented by games that read typed commands. While
// AcceptsText returns true, the platform routes keystrokes to a line editor
// and delivers submitted lines through InputFrame.Command.
type TextEntry interface {
	AcceptsText() bool
}

// AcceptsText reports whether g currently wants typed input.
func AcceptsText(g Game) bool {
	te, ok := g.(TextEntry)
	return ok && te.AcceptsText()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
