package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/erika-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a mode picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode. Each mode
opens on its own menu with an attract demo running behind it; B goes
back to the picker.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Leaderboard
  N            - Change player name
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("arcade", true)
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, closeSvc := openServices(ctx, logger)
	defer closeSvc()

	err := tui.RunApp(svc, tui.AppOptions{
		Runtime:      terminalRuntime(),
		Name:         savedName(svc, ""),
		RememberName: true,
	})
	if err != nil {
		logger.Error("menu failed", "err", err)
		closeSvc()
		closeLog()
		fatalf("%v", err)
	}
}
