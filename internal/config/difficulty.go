package config

import "math"

// DifficultyManager calculates dynamic game parameters from score.
// All methods are pure functions of their arguments and the config.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.SpeedScale <= 0 {
		cfg.SpeedScale = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.StepEvery > 0
}

// BaseSpeed returns the preset-scaled speed at score 0.
func (d *DifficultyManager) BaseSpeed() float64 {
	return d.cfg.BaseSpeed * d.cfg.SpeedScale
}

// Speed returns the stepped speed for a score: base + floor(score/step)*gain.
func (d *DifficultyManager) Speed(score float64) float64 {
	if !d.IsEnabled() {
		return d.BaseSpeed()
	}
	return d.BaseSpeed() + math.Floor(score/d.cfg.StepEvery)*d.cfg.StepGain
}

// Level returns the continuous difficulty level score/step, saturating at the cap.
func (d *DifficultyManager) Level(score float64) float64 {
	if !d.IsEnabled() {
		return 0
	}
	level := score / d.cfg.StepEvery
	if d.cfg.LevelCap > 0 {
		level = math.Min(level, d.cfg.LevelCap)
	}
	return math.Max(level, 0)
}
