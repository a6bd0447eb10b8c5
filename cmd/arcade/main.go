// arcade is a terminal arcade of automotive-themed mini games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/auto-arcade/internal/games/asil"
	_ "github.com/vovakirdan/auto-arcade/internal/games/canbus"
	_ "github.com/vovakirdan/auto-arcade/internal/games/dino"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Auto Arcade - automotive mini games in your terminal",
	Long: `Auto Arcade bundles three small games about cars and their electronics:

  asil    - classify functionalities by safety level before they hit your car
  canbus  - drive car subsystems by typing CAN bus frames
  dino    - the classic runner, jump over the cacti

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu

Examples:
  arcade list
  arcade play asil --difficulty hard
  arcade menu --log-file arcade.log`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}
