package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/registry"
	"github.com/vovakirdan/erika-arcade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the leaderboard for a mode",
	Long: `Display the top scores for the specified mode from the configured
leaderboard (the local database, or Postgres with --leaderboard-dsn).

With --clear the mode's runs and best score are deleted from the local
database instead.

Examples:
  arcade scores runner
  arcade scores flappy --limit 25
  arcade scores gravity --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", leaderboard.TopN, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the local scores for this mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fatalf("unknown mode %q\nRun 'arcade list' to see available modes.", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("creating %s: %v", gameID, err)
	}

	logger, closeLog := newLogger("arcade", false)
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, closeSvc := openServices(ctx, logger)
	defer closeSvc()

	if flagClear {
		if svc.Store == nil {
			closeSvc()
			fatalf("no local database at %s", flagDBPath)
		}
		if err := svc.Store.ClearScores(ctx, gameID); err != nil {
			closeSvc()
			fatalf("%v", err)
		}
		fmt.Printf("Cleared local scores for %s.\n", game.Title())
		return
	}

	limit := min(max(flagLimit, 1), leaderboard.FullLimit)
	res := svc.Board.Top(ctx, gameID, limit)

	fmt.Printf("Leaderboard - %s\n", game.Title())
	fmt.Println()

	if !res.Ok() {
		fmt.Println("Leaderboard offline.")
		return
	}
	if len(res.Records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "Rank", leaderboard.MaxNameLen, "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "----", leaderboard.MaxNameLen, "----", "-----", "----")

	for i, rec := range res.Records {
		date := ""
		if !rec.CreatedAt.IsZero() {
			date = rec.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-*s  %-8d  %s\n", i+1, leaderboard.MaxNameLen, rec.Name, rec.Score, date)
	}

	printLocalStats(ctx, svc.Store, gameID)
}

// printLocalStats prints this machine's best score and run totals.
func printLocalStats(ctx context.Context, store *storage.Store, gameID string) {
	if store == nil {
		return
	}
	best, err := store.HighScore(gameID)
	if err != nil || best == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Best on this machine: %d\n", best)

	stats, err := store.GetAllGamesStats(ctx)
	if err != nil {
		return
	}
	if gs, ok := stats[gameID]; ok {
		fmt.Printf("Runs: %d   Average: %.1f   Last played: %s\n",
			gs.GamesCount, gs.AvgScore, gs.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
