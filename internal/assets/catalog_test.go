package assets

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

func TestEmbeddedCatalogHasCoreSprites(t *testing.T) {
	sprites, err := Parse(defaultSprites)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	for _, name := range []string{
		"runner", "runner_jump", "runner_crouch", "runner_flipped",
		"cactus", "bird", "cloud", "flappy_bird", "asteroid", "planet", "tile",
	} {
		if len(sprites[name]) == 0 {
			t.Errorf("missing sprite %q", name)
		}
	}
}

func TestNotReadyBeforeLoad(t *testing.T) {
	c := NewCatalog("", nil)
	if c.Ready() {
		t.Fatal("new catalog should not be ready")
	}
	if _, ok := c.Sprite("runner", 0); ok {
		t.Error("Sprite() should miss before loading")
	}
}

func TestOnAllLoadedFiresOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	if err := os.WriteFile(path, defaultSprites, 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCatalog(path, nil)

	var calls atomic.Int32
	c.OnAllLoaded(func() { calls.Add(1) })
	c.OnAllLoaded(func() { calls.Add(1) })

	for i := 0; i < 3; i++ {
		if err := c.Load(context.Background()); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("callbacks fired %d times, want 2", got)
	}

	// Registered after loading: runs immediately.
	c.OnAllLoaded(func() { calls.Add(1) })
	if got := calls.Load(); got != 3 {
		t.Errorf("late callback not run, calls = %d", got)
	}
	if !c.Ready() {
		t.Error("catalog should be ready")
	}
}

func TestStartLoadsInBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	os.WriteFile(path, defaultSprites, 0o644)
	c := NewCatalog(path, nil)
	c.Start(context.Background())

	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("catalog did not load")
	}
	if _, ok := c.Sprite("cactus", 0); !ok {
		t.Error("cactus should be available after loading")
	}
}

func TestFramesWrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	os.WriteFile(path, defaultSprites, 0o644)
	c := NewCatalog(path, nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	a, _ := c.Sprite("bird", 0)
	b, ok := c.Sprite("bird", 2)
	if !ok || a.Rows[0] != b.Rows[0] {
		t.Error("frame 2 of a two-frame sprite should wrap to frame 0")
	}
	if a.Color != core.ColorOrange {
		t.Errorf("bird color = %v, want orange", a.Color)
	}
}

func TestLoadFailureLeavesCatalogNotReady(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "sprites: {}\n"},
		{"bad color", "sprites:\n  x:\n    color: plaid\n    frames: [[\"#\"]]\n"},
		{"no frames", "sprites:\n  x:\n    color: red\n"},
		{"not yaml", "sprites: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sprites.yaml")
			os.WriteFile(path, []byte(tt.data), 0o644)
			c := NewCatalog(path, nil)

			fired := false
			c.OnAllLoaded(func() { fired = true })
			if err := c.Load(context.Background()); err == nil {
				t.Fatal("expected an error")
			}
			if c.Ready() || fired {
				t.Error("failed load must not mark the catalog ready")
			}
		})
	}
}

func TestMissingCustomPath(t *testing.T) {
	c := NewCatalog(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err := c.Load(context.Background()); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestFallbackDrawWithoutCatalog(t *testing.T) {
	c := NewCatalog("", nil)
	scr := core.NewScreen(4, 2)
	core.DrawSprite(scr, c, "runner", 0, core.NewRect(0, 0, 2, 2), core.ColorRed)

	if cell := scr.GetCell(1, 1); cell.Rune != '█' || cell.Color != core.ColorRed {
		t.Errorf("cell = %+v, want flat red block", cell)
	}
}
