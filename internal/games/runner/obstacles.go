package runner

import (
	"math"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
)

// Kind classifies a runner obstacle.
type Kind int

const (
	KindCactus Kind = iota
	KindBird
)

// Obstacle is a ground cactus or a flying bird.
type Obstacle struct {
	Box    core.RectF
	Kind   Kind
	Passed bool // set exactly once, when the trailing edge clears the actor
}

// Spawner owns the obstacle timer-accumulator.
type Spawner struct {
	cfg      config.RunnerObstacles
	groundY  float64
	rng      core.Rand
	timer    float64
	interval float64
}

// NewSpawner creates a spawner whose first spawn happens after cfg.FirstInterval.
func NewSpawner(cfg config.RunnerObstacles, groundLineY float64, rng core.Rand) *Spawner {
	return &Spawner{
		cfg:      cfg,
		groundY:  groundLineY,
		rng:      rng,
		interval: cfg.FirstInterval,
	}
}

// Interval returns the deterministic part of the spawn interval for a speed.
func (s *Spawner) Interval(speed float64) float64 {
	return math.Max(s.cfg.IntervalBase-s.cfg.IntervalPerSpeed*speed, s.cfg.IntervalMin)
}

// Update advances the timer and returns newly spawned obstacles, if any.
// spawnX is the canvas width plus margin at this tick.
func (s *Spawner) Update(dt, speed, score, viewportW float64) []Obstacle {
	s.timer += dt
	if s.timer < s.interval {
		return nil
	}
	s.timer = 0
	s.interval = s.Interval(speed) + s.rng.Float64()*s.cfg.IntervalJitter
	return s.spawn(score, viewportW+s.cfg.SpawnMargin)
}

func (s *Spawner) spawn(score, x float64) []Obstacle {
	if score > s.cfg.BirdMinScore && core.Chance(s.rng, s.cfg.BirdChance) {
		bottom := s.groundY - s.cfg.BirdLift - s.rng.Float64()*s.cfg.BirdLiftJitter
		return []Obstacle{{
			Box:  core.NewRectF(x, bottom-s.cfg.Height, s.cfg.Width, s.cfg.Height),
			Kind: KindBird,
		}}
	}

	count := s.patternCount(s.rng.Float64())
	obs := make([]Obstacle, 0, count)
	top := s.groundY + 2 - s.cfg.Height
	for i := 0; i < count; i++ {
		obs = append(obs, Obstacle{
			Box:  core.NewRectF(x+float64(i)*s.cfg.Width, top, s.cfg.Width, s.cfg.Height),
			Kind: KindCactus,
		})
	}
	return obs
}

// patternCount maps a roll onto the cumulative pattern table.
func (s *Spawner) patternCount(roll float64) int {
	for i, threshold := range s.cfg.Pattern {
		if roll < threshold {
			return i + 1
		}
	}
	return len(s.cfg.Pattern) + 1
}
