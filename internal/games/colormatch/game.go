// Package colormatch implements Color Match: the runner cycles its color and
// may only cross barriers painted the same color.
package colormatch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/games/scenery"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

const runFrames = 8

// Palette is the color order the actor cycles through.
var Palette = []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen}

// Barrier is a full-height colored wall.
type Barrier struct {
	X, Width   float64
	ColorIndex int
	Passed     bool // set once at the crossing tick, match or not
}

// Game implements the Color Match mode.
type Game struct {
	cfg      config.ColorConfig
	fixedCfg bool
	diff     *config.DifficultyManager
	rt       core.RuntimeConfig
	vp       core.Viewport
	rng      core.Rand

	colorIndex int
	anim       float64
	barriers   []Barrier
	clouds     *scenery.Clouds
	timer      float64

	score     float64
	speed     float64
	gameOver  bool
	tickCount int
	demoTimer float64
}

// New creates a Color Match game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config, skipping the search path.
func NewWithConfig(cfg config.ColorConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "color"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Color Match"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.fixedCfg {
		preset := config.ParsePreset(rt.Difficulty)
		cfg, err := config.LoadColor(rt.ConfigPath, preset)
		if err != nil {
			cfg = config.DefaultColorConfig()
			config.ApplyPreset(&cfg.Difficulty, preset)
		}
		g.cfg = cfg
	}
	if g.cfg.Barriers.Palette <= 0 || g.cfg.Barriers.Palette > len(Palette) {
		g.cfg.Barriers.Palette = len(Palette)
	}
	g.rt = rt
	g.vp = rt.Viewport()
	g.rng = rt.RNG()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.colorIndex = 0
	g.anim = 0
	g.barriers = g.barriers[:0]
	g.clouds = scenery.NewClouds(g.cfg.World.Clouds, g.vp, core.NewRand(rt.Seed+1), 0.12, 0.30)
	g.timer = 0

	g.score = 0
	g.speed = g.diff.Speed(0)
	g.gameOver = false
	g.tickCount = 0
	g.demoTimer = 0
}

// Resize recomputes layout for a new viewport.
func (g *Game) Resize(vp core.Viewport) {
	g.vp = vp
}

// Cycle advances the actor to the next palette color.
func (g *Game) Cycle() {
	g.colorIndex = (g.colorIndex + 1) % g.cfg.Barriers.Palette
}

// ColorIndex returns the actor's current palette index.
func (g *Game) ColorIndex() int {
	return g.colorIndex
}

// Interval returns the spawn interval for a speed.
func (g *Game) Interval(speed float64) float64 {
	b := g.cfg.Barriers
	return math.Max(b.IntervalBase-b.IntervalPerSpeed*speed, b.IntervalMin)
}

// Step advances the game by dt.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if g.rt.Demo {
		g.stepDemo(dt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPrimary) {
		g.Cycle()
	}

	g.speed = g.diff.Speed(g.score)
	g.clouds.Update(g.speed*0.5, dt, g.vp)

	g.timer += dt
	if g.timer >= g.Interval(g.speed) {
		g.timer = 0
		g.spawn()
	}

	g.anim = math.Mod(g.anim+0.12*(0.6+g.speed/10)*dt, runFrames)

	passed := g.updateBarriers(dt)
	// The trickle also counts on the tick that ends the run.
	g.score += g.cfg.Scoring.PerTick * dt
	return core.StepResult{State: g.State(), Passed: passed}
}

func (g *Game) spawn() {
	b := g.cfg.Barriers
	g.barriers = append(g.barriers, Barrier{
		X:          g.vp.W + b.SpawnMargin,
		Width:      b.WidthMin + g.rng.Float64()*b.WidthJitter,
		ColorIndex: g.rng.Intn(b.Palette),
	})
}

// updateBarriers applies the one-shot crossing test: the first tick a
// barrier's left edge passes the threshold it is judged, and never again.
func (g *Game) updateBarriers(dt float64) int {
	threshold := g.cfg.Player.X + g.cfg.Player.Width*g.cfg.Barriers.CrossFraction
	passed := 0

	for i := len(g.barriers) - 1; i >= 0; i-- {
		b := &g.barriers[i]
		b.X -= g.speed * dt

		if !b.Passed && b.X < threshold {
			b.Passed = true
			if b.ColorIndex != g.colorIndex {
				g.gameOver = true
				return passed
			}
			passed++
			g.score += g.cfg.Scoring.PerObstacle
		}

		if b.X+b.Width < 0 {
			g.barriers = append(g.barriers[:i], g.barriers[i+1:]...)
		}
	}
	return passed
}

func (g *Game) stepDemo(dt float64) {
	g.demoTimer += dt
	if g.demoTimer > g.cfg.World.DemoEvery {
		g.demoTimer = 0
		g.Cycle()
	}
	g.speed = g.diff.BaseSpeed()
	g.clouds.Update(g.speed*0.5, dt, g.vp)
	g.anim = math.Mod(g.anim+0.12*0.9*dt, runFrames)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	proj := core.NewProjection(g.vp, dst.Width(), dst.Height())
	g.clouds.Render(dst, proj, g.rt.Sprites)

	floor := g.cfg.World.GroundLineY
	for _, b := range g.barriers {
		area := proj.Rect(core.NewRectF(b.X, 0, b.Width, floor))
		dst.FillRect(area, '▓', Palette[b.ColorIndex])
	}

	row := proj.Y(floor)
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, row, '▔', core.ColorGray)
	}

	p := g.cfg.Player
	box := core.NewRectF(p.X, p.GroundY, p.Width, p.Height)
	core.DrawSpriteTinted(dst, g.rt.Sprites, "runner", int(g.anim), proj.Rect(box), Palette[g.colorIndex])

	dst.DrawTextColor(dst.Width()-7, 0, fmt.Sprintf("%05d", int(g.score)), core.ColorGray)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score),
		GameOver: g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("color", func() registry.Game {
		return New()
	}, registry.Order(4))
}
