package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/platform/tui"
	"github.com/vovakirdan/auto-arcade/internal/registry"
	"github.com/vovakirdan/auto-arcade/internal/scores"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
Scores are kept until the arcade exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Session high scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --log-file arcade.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := tui.NewLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	board := scores.NewBoard()
	cfg := runtimeConfig()
	preset := config.DifficultyNormal

	for {
		menuResult, err := tui.RunMenu(board, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(board, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		setup := setupFor(gameID)
		if setup.hasDifficulty() {
			res, selErr := tui.RunDifficultySelector(menuResult.GameID, preset, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = res.Config
			if res.Quit {
				break
			}
			if res.Back {
				continue
			}
			preset = res.Preset
		}

		if err := setup.apply("", string(preset)); err != nil {
			logger.Error("game setup failed", "game", gameID, "error", err)
			continue
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, board, logger, runCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
