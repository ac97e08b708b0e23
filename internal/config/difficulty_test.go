package config

import "testing"

func TestDifficultySpeedSteps(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	tests := []struct {
		score float64
		want  float64
	}{
		{0, 6},
		{24.9, 6},
		{25, 7},
		{74, 8},
		{350, 20},
	}
	for _, tt := range tests {
		if got := dm.Speed(tt.score); got != tt.want {
			t.Errorf("Speed(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultySpeedIsPure(t *testing.T) {
	dm := NewDifficultyManager(DefaultGravityConfig().Difficulty)
	scores := []float64{0, 3.5, 17.9, 18, 40, 18, 0}

	first := make([]float64, len(scores))
	for i, s := range scores {
		first[i] = dm.Speed(s)
	}
	for i, s := range scores {
		if got := dm.Speed(s); got != first[i] {
			t.Fatalf("Speed(%v) changed between calls: %v then %v", s, first[i], got)
		}
	}
}

func TestDifficultyFixed(t *testing.T) {
	cfg := DefaultColorConfig().Difficulty
	ApplyPreset(&cfg, DifficultyFixed)
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if got := dm.Speed(500); got != 5 {
		t.Errorf("fixed speed = %v, want 5", got)
	}
	if got := dm.Level(500); got != 0 {
		t.Errorf("fixed level = %v, want 0", got)
	}
}

func TestDifficultyLevelSaturates(t *testing.T) {
	dm := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	if got := dm.Level(7); got != 0.5 {
		t.Errorf("Level(7) = %v, want 0.5", got)
	}
	if got := dm.Level(14 * 12); got != 12 {
		t.Errorf("Level(168) = %v, want 12", got)
	}
	if got := dm.Level(10000); got != 12 {
		t.Errorf("Level should saturate at 12, got %v", got)
	}
}

func TestDifficultyPresetScale(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	ApplyPreset(&cfg, DifficultyHard)
	dm := NewDifficultyManager(cfg)

	if got := dm.BaseSpeed(); got < 7.19 || got > 7.21 {
		t.Errorf("hard base speed = %v, want 7.2", got)
	}
}
