package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

// record submits a run through the leaderboard interface.
func record(t *testing.T, store *Store, game string, score int) {
	t.Helper()
	rec := leaderboard.Record{Table: game, Name: "erika", Score: score, CreatedAt: time.Now()}
	if err := store.Submit(context.Background(), rec); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
}

func TestStoreTopIsPerGameAndOrdered(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, s := range []int{100, 50, 200, 150, 75} {
		record(t, store, "flappy", s)
	}
	record(t, store, "runner", 500)

	top, err := store.Top(ctx, "flappy", 3)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	want := []int{200, 150, 100}
	if len(top) != len(want) {
		t.Fatalf("Top() returned %d records, want %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Score != w || top[i].Name != "erika" || top[i].Table != "flappy" {
			t.Errorf("record %d = %+v, want score %d", i, top[i], w)
		}
		if top[i].CreatedAt.IsZero() {
			t.Errorf("record %d has no timestamp", i)
		}
	}

	runner, err := store.Top(ctx, "runner", 10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(runner) != 1 {
		t.Errorf("expected 1 runner record, got %d", len(runner))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	tests := []struct {
		score   int
		newBest bool
		want    int
	}{
		{100, true, 100},
		{300, true, 300},
		{200, false, 300},
		{300, false, 300},
	}
	for _, tt := range tests {
		got, err := store.SaveHighScore("flappy", tt.score)
		if err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", tt.score, err)
		}
		if got != tt.newBest {
			t.Errorf("SaveHighScore(%d) = %v, want %v", tt.score, got, tt.newBest)
		}
		if high, _ := store.HighScore("flappy"); high != tt.want {
			t.Errorf("after %d: high = %d, want %d", tt.score, high, tt.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	record(t, store, "flappy", 100)
	record(t, store, "flappy", 200)
	store.SaveHighScore("flappy", 200)
	record(t, store, "runner", 300)

	if err := store.ClearScores(ctx, "flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if top, _ := store.Top(ctx, "flappy", 10); len(top) != 0 {
		t.Errorf("expected no flappy records after clear, got %d", len(top))
	}
	if high, _ := store.HighScore("flappy"); high != 0 {
		t.Errorf("high score should be cleared, got %d", high)
	}
	if top, _ := store.Top(ctx, "runner", 10); len(top) != 1 {
		t.Error("clearing flappy must not touch runner")
	}
}

func TestStorePlayerName(t *testing.T) {
	store := openTestStore(t)

	name, err := store.PlayerName()
	if err != nil || name != "" {
		t.Fatalf("PlayerName() = %q, %v; want empty", name, err)
	}

	for _, want := range []string{"erika", "ana"} {
		if err := store.SetPlayerName(want); err != nil {
			t.Fatalf("SetPlayerName() failed: %v", err)
		}
		if got, _ := store.PlayerName(); got != want {
			t.Errorf("PlayerName() = %q, want %q", got, want)
		}
	}
}

func TestStoreAsLeaderboardBackend(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, s := range []int{10, 40, 40, 25} {
		rec := leaderboard.Record{Table: "block", Name: "p", Score: s, CreatedAt: time.Now()}
		if err := store.Submit(ctx, rec); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	top, err := store.Top(ctx, "block", 2)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 40 || top[1].Score != 40 {
		t.Errorf("Top() = %+v", top)
	}

	tests := []struct {
		score, want int
	}{
		{50, 1},
		{40, 1},
		{30, 3},
		{0, 5},
	}
	for _, tt := range tests {
		rank, err := store.Rank(ctx, "block", tt.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if rank != tt.want {
			t.Errorf("Rank(%d) = %d, want %d", tt.score, rank, tt.want)
		}
	}
}

func TestStoreGamesStats(t *testing.T) {
	store := openTestStore(t)

	record(t, store, "color", 4)
	record(t, store, "color", 8)
	record(t, store, "gravity", 30)

	stats, err := store.GetAllGamesStats(context.Background())
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	c := stats["color"]
	if c == nil || c.GamesCount != 2 || c.HighScore != 8 || c.AvgScore != 6 {
		t.Errorf("color stats = %+v", c)
	}
	if c != nil && c.LastPlayed.IsZero() {
		t.Error("color stats should carry the last run time")
	}
	if g := stats["gravity"]; g == nil || g.TotalScore != 30 {
		t.Errorf("gravity stats = %+v", g)
	}
	if _, ok := stats["runner"]; ok {
		t.Error("unplayed modes should have no stats")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
