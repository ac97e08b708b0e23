package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/erika-arcade/internal/assets"
	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/platform/tui"
	"github.com/vovakirdan/erika-arcade/internal/storage"
)

// newLogger builds the process logger. Interactive commands own the
// terminal, so they log to ~/.arcade/arcade.log instead of stderr.
func newLogger(prefix string, interactive bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if interactive {
		w = io.Discard
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, ".arcade")
			if err := os.MkdirAll(dir, 0o755); err == nil {
				f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err == nil {
					w = f
					closer = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closer
}

// openServices opens the score store, picks the leaderboard backend and
// starts loading sprites. Failures degrade: no store means no persisted
// high scores, no backend means an offline leaderboard.
func openServices(ctx context.Context, logger *log.Logger) (tui.Services, func()) {
	svc := tui.Services{Logger: logger}
	var closers []func()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		svc.Store = store
		closers = append(closers, func() { store.Close() })
	}

	var backend leaderboard.Backend
	if flagLeaderboardDSN != "" {
		pg, err := leaderboard.OpenPostgres(ctx, flagLeaderboardDSN)
		if err != nil {
			logger.Warn("could not reach leaderboard, using local scores", "err", err)
		} else {
			backend = pg
			closers = append(closers, func() { pg.Close() })
		}
	}
	if backend == nil && store != nil {
		backend = store
	}
	svc.Board = leaderboard.NewClient(backend, logger)
	svc.Board.SetTimeout(flagBoardTimeout)
	if !svc.Board.Online() {
		logger.Warn("leaderboard offline, scores will not be shared")
	}

	sprites := assets.NewCatalog(flagSprites, logger)
	sprites.OnAllLoaded(func() {
		logger.Debug("sprites loaded", "count", len(sprites.Names()))
	})
	sprites.Start(ctx)
	svc.Sprites = sprites

	return svc, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

// savedName returns the remembered player name, or fallback.
func savedName(svc tui.Services, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if svc.Store == nil {
		return leaderboard.DefaultName
	}
	name, err := svc.Store.PlayerName()
	if err != nil || name == "" {
		return leaderboard.DefaultName
	}
	return name
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
