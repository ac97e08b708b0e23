package flappy

import (
	"math"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X      float64 // Left edge
	GapY   float64 // Top of the gap
	Gap    float64 // Gap height, fixed at spawn
	Passed bool    // Whether the bird has passed this pipe (for scoring)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.NewRectF(p.X, 0, width, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect(width, canvasH float64) core.RectF {
	bottom := p.GapY + p.Gap
	return core.NewRectF(p.X, bottom, width, canvasH-bottom)
}

// Tuning is the difficulty-derived pipe tuning for one tick.
type Tuning struct {
	Speed    float64
	Interval float64
	Gap      float64
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes []Pipe
	rng   core.Rand
	cfg   config.FlappyPipes
	timer float64
}

// NewPipeManager creates an empty pipe manager.
func NewPipeManager(cfg config.FlappyPipes, rng core.Rand) *PipeManager {
	return &PipeManager{
		pipes: make([]Pipe, 0, 8),
		rng:   rng,
		cfg:   cfg,
	}
}

// TuningFor maps the saturating difficulty level onto speed, interval and gap.
func (pm *PipeManager) TuningFor(baseSpeed, level float64) Tuning {
	return Tuning{
		Speed:    baseSpeed + level*pm.cfg.SpeedPerLevel,
		Interval: math.Max(pm.cfg.IntervalBase-level*pm.cfg.IntervalPerLevel, pm.cfg.IntervalMin),
		Gap:      math.Max(pm.cfg.GapBase-level*pm.cfg.GapPerLevel, pm.cfg.GapMin),
	}
}

// Seed places the two opening pipes, the second trailing by a fraction of the interval.
func (pm *PipeManager) Seed(vp core.Viewport, t Tuning) {
	pm.pipes = pm.pipes[:0]
	pm.timer = 0
	for i := 0; i < 2; i++ {
		pm.Spawn(vp, t, 0, float64(i)*t.Interval*pm.cfg.SecondOffset)
	}
}

// Spawn adds a pipe at the right edge plus offset.
// The gap is drawn uniformly in the band, jittered by a score-driven chaos
// term, and then clamped back into the band.
func (pm *PipeManager) Spawn(vp core.Viewport, t Tuning, score, offset float64) {
	minY := pm.cfg.BandMargin
	maxY := vp.H - pm.cfg.BandMargin - t.Gap
	span := math.Max(pm.cfg.MinRange, maxY-minY)
	chaos := math.Min(score/pm.cfg.ChaosEvery, pm.cfg.ChaosCap)

	gapY := minY + pm.rng.Float64()*span
	gapY += (pm.rng.Float64() - 0.5) * chaos * pm.cfg.ChaosScale

	pm.pipes = append(pm.pipes, Pipe{
		X:    vp.W + pm.cfg.SpawnMargin + offset,
		GapY: math.Max(minY, math.Min(gapY, maxY)),
		Gap:  t.Gap,
	})
}

// Update runs the spawn timer, then moves, scores, culls and collides pipes
// back to front. It returns the number passed and whether the bird was hit.
func (pm *PipeManager) Update(dt float64, vp core.Viewport, t Tuning, moveFactor, score float64, bird core.RectF) (passed int, hit bool) {
	pm.timer += dt
	if pm.timer >= t.Interval {
		pm.timer = 0
		pm.Spawn(vp, t, score, 0)
	}

	for i := len(pm.pipes) - 1; i >= 0; i-- {
		p := &pm.pipes[i]
		p.X -= t.Speed * dt * moveFactor

		if !p.Passed && p.X+pm.cfg.Width < bird.X {
			p.Passed = true
			passed++
		}

		if p.X+pm.cfg.Width < -pm.cfg.RemoveMargin {
			pm.pipes = append(pm.pipes[:i], pm.pipes[i+1:]...)
			continue
		}

		if pm.collides(*p, bird) {
			return passed, true
		}
	}
	return passed, false
}

// collides tests the inset bird box against the pipe's two segments.
func (pm *PipeManager) collides(p Pipe, bird core.RectF) bool {
	hitsX := bird.Right() > p.X && bird.X < p.X+pm.cfg.Width
	return hitsX && (bird.Y < p.GapY || bird.Bottom() > p.GapY+p.Gap)
}

// Clear removes all pipes and resets the timer.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
	pm.timer = 0
}

// Pipes returns the current list of pipes (for rendering).
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
