package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/multiplayer"
	"github.com/vovakirdan/erika-arcade/internal/platform/tui"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRace       bool
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Space/Up/W   - Jump, flap, flip or match
  Down/S       - Duck (runner)
  Enter        - Start / confirm
  P/Esc        - Pause
  R            - Restart
  B            - Back to the mode menu
  Q/Ctrl+C     - Quit

Race controls (--race):
  Player 1     - W / Space, S to duck
  Player 2     - Up, Down to duck

Difficulty options:
  easy   - Slower base speed
  normal - Config default
  hard   - Faster base speed
  fixed  - No progression, stays at the base speed

Examples:
  arcade play runner
  arcade play flappy --race
  arcade play gravity --difficulty hard
  arcade play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom mode config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagRace, "race", false, "Two players race on a split screen")
	playCmd.Flags().StringVar(&flagName, "name", config.GetEnv("ARCADE_NAME", ""), "Player name for the leaderboard")
}

// terminalRuntime builds the runtime config from the global flags and the
// current terminal size.
func terminalRuntime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fatalf("unknown mode %q\nRun 'arcade list' to see available modes.", gameID)
	}
	if flagRace && !registry.SupportsRace(gameID) {
		fatalf("%s has no race mode", gameID)
	}

	rt := terminalRuntime()
	rt.ConfigPath = flagConfig
	rt.Difficulty = flagDifficulty

	mode := multiplayer.MatchModeSolo
	if flagRace {
		mode = multiplayer.MatchModeRace
	}

	logger, closeLog := newLogger("arcade", true)
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, closeSvc := openServices(ctx, logger)
	defer closeSvc()

	err := tui.Run(svc, tui.GameOptions{
		GameID:  gameID,
		Mode:    mode,
		Name:    savedName(svc, flagName),
		Runtime: rt,
	})
	if err != nil {
		logger.Error("play failed", "mode", gameID, "err", err)
		closeSvc()
		closeLog()
		fatalf("running %s: %v", gameID, err)
	}
}
