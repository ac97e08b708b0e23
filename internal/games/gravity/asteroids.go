package gravity

import (
	"math"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
)

// Lane is an asteroid band relative to the side that is down at spawn time.
type Lane int

const (
	LaneLow  Lane = iota // touching the down plane
	LaneMid              // corridor centre
	LaneHigh             // touching the up plane
)

func (l Lane) String() string {
	switch l {
	case LaneLow:
		return "low"
	case LaneMid:
		return "mid"
	case LaneHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Asteroid is a square obstacle. Rotation is cosmetic.
type Asteroid struct {
	Box      core.RectF
	Lane     Lane
	Rotation float64
	Spin     float64
	Passed   bool
}

// Planes is the vertical layout asteroids are placed against.
type Planes struct {
	GroundY  float64 // actor top resting on the ground
	CeilingY float64 // actor top resting on the ceiling
	Floor    float64 // ground line
}

// Field owns asteroid spawning and the lane bias.
type Field struct {
	cfg      config.GravityAsteroids
	planes   Planes
	rng      core.Rand
	timer    float64
	interval float64
	lastLane Lane
}

// NewField creates an asteroid field whose first spawn is after cfg.FirstInterval.
func NewField(cfg config.GravityAsteroids, planes Planes, rng core.Rand) *Field {
	return &Field{
		cfg:      cfg,
		planes:   planes,
		rng:      rng,
		interval: cfg.FirstInterval,
		lastLane: LaneLow,
	}
}

// Interval returns the deterministic part of the spawn interval for a speed.
func (f *Field) Interval(speed float64) float64 {
	return math.Max(f.cfg.IntervalBase-f.cfg.IntervalPerSpeed*speed, f.cfg.IntervalMin)
}

// Update advances the timer and returns a new asteroid when one is due.
func (f *Field) Update(dt, speed float64, dir int, viewportW float64) (Asteroid, bool) {
	f.timer += dt
	if f.timer < f.interval {
		return Asteroid{}, false
	}
	f.timer = 0
	f.interval = f.Interval(speed) + f.rng.Float64()*f.cfg.IntervalJitter
	return f.Spawn(dir, viewportW+f.cfg.SpawnMargin), true
}

// nextLane rolls a lane; a repeat of the previous lane is moved off with probability LaneReroll.
func (f *Field) nextLane() Lane {
	lane := Lane(f.rng.Intn(3))
	if lane == f.lastLane && f.rng.Float64() < f.cfg.LaneReroll {
		lane = (lane + 1 + Lane(f.rng.Intn(2))) % 3
	}
	f.lastLane = lane
	return lane
}

// Spawn places an asteroid at x in a biased lane.
func (f *Field) Spawn(dir int, x float64) Asteroid {
	lane := f.nextLane()
	size := f.cfg.SizeMin + f.rng.Float64()*f.cfg.SizeJitter

	groundBand := func() float64 {
		lo, hi := f.planes.GroundY-size*0.4, f.planes.GroundY-size*0.1
		return lo + f.rng.Float64()*math.Max(4, hi-lo)
	}
	ceilingBand := func() float64 {
		lo, hi := f.planes.CeilingY, f.planes.CeilingY+size*0.4
		return lo + f.rng.Float64()*math.Max(4, hi-lo)
	}

	var y float64
	switch {
	case lane == LaneMid:
		centre := (f.planes.CeilingY + f.planes.Floor) / 2
		y = centre - size/2 + (f.rng.Float64()-0.5)*0.3*size
	case (lane == LaneLow) == (dir > 0):
		y = groundBand()
	default:
		y = ceilingBand()
	}

	spin := f.cfg.RotationMin + f.rng.Float64()*(f.cfg.RotationMax-f.cfg.RotationMin)
	if f.rng.Float64() < 0.5 {
		spin = -spin
	}

	return Asteroid{
		Box:      core.NewRectF(x, y, size, size),
		Lane:     lane,
		Rotation: f.rng.Float64() * 2 * math.Pi,
		Spin:     spin,
	}
}
