// arcade is a terminal arcade with five one-button-ish modes, a two-player
// race, a shared leaderboard and SSH and browser front ends.
//
// Usage:
//
//	arcade list              - List available modes
//	arcade play <mode>       - Play a mode
//	arcade menu              - Start menu to pick modes interactively
//	arcade scores <mode>     - Show the leaderboard for a mode
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Start the browser bridge
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed for reproducible gameplay
//	--db <path>               - Set database path (default: ~/.arcade/scores.db)
//	--leaderboard-dsn <dsn>   - Use a Postgres leaderboard instead of the local one
//	--leaderboard-timeout <d> - Per-request leaderboard timeout (default: 5s)
//	--sprites <path>          - Load sprites from a custom YAML file
//	--log-level <level>       - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/erika-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/erika-arcade/internal/games/block"
	_ "github.com/vovakirdan/erika-arcade/internal/games/colormatch"
	_ "github.com/vovakirdan/erika-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/erika-arcade/internal/games/gravity"
	_ "github.com/vovakirdan/erika-arcade/internal/games/runner"
)

var (
	// Global flags
	flagFPS            int
	flagSeed           int64
	flagDBPath         string
	flagLeaderboardDSN string
	flagBoardTimeout   time.Duration
	flagSprites        string
	flagLogLevel       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Erika Arcade - five quick games in your terminal",
	Long: `Erika Arcade is a terminal arcade: Runner, Flappy, Gravity Flip,
Color Match and Block Puzzle, with a split-screen race for two players
and a shared leaderboard.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  web      - Serve the arcade to browsers

Examples:
  arcade list
  arcade play runner
  arcade play flappy --race
  arcade menu
  arcade serve --ssh :2222
  arcade web --addr :8080
  arcade scores gravity`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db",
		config.GetEnv("ARCADE_DB", "~/.arcade/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboardDSN, "leaderboard-dsn",
		config.GetEnv("ARCADE_LEADERBOARD_DSN", ""), "Postgres DSN for a shared leaderboard (empty = local database)")
	rootCmd.PersistentFlags().DurationVar(&flagBoardTimeout, "leaderboard-timeout", 5*time.Second, "Per-request leaderboard timeout")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}
