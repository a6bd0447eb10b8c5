package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/core"
	"github.com/vovakirdan/auto-arcade/internal/games/asil"
	"github.com/vovakirdan/auto-arcade/internal/games/canbus"
	"github.com/vovakirdan/auto-arcade/internal/games/dino"
)

// gameSetup holds the package-level knobs a game exposes before creation.
type gameSetup struct {
	setConfigPath func(path string)
	validate      func(path string) error
	setDifficulty func(preset string) // nil when the game has no presets
}

var gameSetups = map[string]gameSetup{
	"asil":   {asil.SetConfigPath, asil.ValidateConfig, asil.SetDifficultyPreset},
	"canbus": {canbus.SetConfigPath, canbus.ValidateConfig, nil},
	"dino":   {dino.SetConfigPath, dino.ValidateConfig, dino.SetDifficultyPreset},
}

func setupFor(gameID string) gameSetup {
	return gameSetups[gameID]
}

// hasDifficulty reports whether the game accepts difficulty presets.
func (s gameSetup) hasDifficulty() bool {
	return s.setDifficulty != nil
}

func (s gameSetup) options() string {
	if s.hasDifficulty() {
		return "--config, --difficulty"
	}
	return "--config"
}

// apply validates an explicit config path and hands the options to the
// game. An unreadable explicit config is an error; implicit locations are
// left to the game's fallback chain.
func (s gameSetup) apply(configPath, difficulty string) error {
	if configPath != "" && s.validate != nil {
		if err := s.validate(configPath); err != nil {
			return err
		}
	}
	if s.setConfigPath != nil {
		s.setConfigPath(configPath)
	}
	if s.setDifficulty != nil {
		s.setDifficulty(difficulty)
	}
	return nil
}

// checkDifficulty rejects preset names the games would silently ignore.
func checkDifficulty(name string) error {
	if name != "" && config.ParsePreset(name) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
