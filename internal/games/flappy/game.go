// Package flappy implements Flappy Erika: flap through a stream of pipes.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/games/scenery"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

// Game implements the Flappy core.
type Game struct {
	cfg      config.FlappyConfig
	fixedCfg bool
	diff     *config.DifficultyManager
	rt       core.RuntimeConfig
	vp       core.Viewport

	birdY    float64 // Bird top
	birdVel  float64
	pipes    *PipeManager
	clouds   *scenery.Clouds
	tuning   Tuning
	score    int
	gameOver bool

	demoTime  float64
	tickCount int
}

// New creates a Flappy core that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config, skipping the search path.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Erika"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.fixedCfg {
		preset := config.ParsePreset(rt.Difficulty)
		cfg, err := config.LoadFlappy(rt.ConfigPath, preset)
		if err != nil {
			cfg = config.DefaultFlappyConfig()
			config.ApplyPreset(&cfg.Difficulty, preset)
		}
		g.cfg = cfg
	}
	g.rt = rt
	g.vp = rt.Viewport()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.birdY = g.vp.H / 2
	g.birdVel = 0
	g.score = 0
	g.gameOver = false
	g.demoTime = 0
	g.tickCount = 0

	g.pipes = NewPipeManager(g.cfg.Pipes, rt.RNG())
	g.tuning = g.pipes.TuningFor(g.diff.BaseSpeed(), 0)
	g.clouds = scenery.NewClouds(g.cfg.World.Clouds, g.vp, core.NewRand(rt.Seed+1), 0.35, 0.80)
	if !rt.Demo {
		g.pipes.Seed(g.vp, g.tuning)
	}
}

// Resize recomputes layout for a new viewport.
func (g *Game) Resize(vp core.Viewport) {
	g.vp = vp
}

// Step advances the game by dt.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++
	g.clouds.Update(1, dt, g.vp)

	if g.rt.Demo {
		g.stepDemo(dt)
		return core.StepResult{State: g.State()}
	}

	g.tuning = g.pipes.TuningFor(g.diff.BaseSpeed(), g.diff.Level(float64(g.score)))

	if in.Has(core.ActionPrimary) {
		g.birdVel = g.cfg.Physics.FlapImpulse
	}
	g.birdVel += g.cfg.Physics.Gravity * dt
	g.birdY += g.birdVel * dt

	if g.birdY < 0 || g.birdY+g.cfg.Player.Height > g.vp.H {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	passed, hit := g.pipes.Update(dt, g.vp, g.tuning, g.cfg.Physics.MoveFactor, float64(g.score), g.hitbox())
	g.score += passed * int(g.cfg.Scoring.PerObstacle)
	if hit {
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), Passed: passed}
}

// stepDemo bobs the bird on a sine wave with no pipes.
func (g *Game) stepDemo(dt float64) {
	g.demoTime += dt
	ph := g.cfg.Physics
	g.birdY = g.vp.H/2 + math.Sin(g.demoTime*ph.DemoSpeed)*ph.DemoAmplitude - g.cfg.Player.Height/2
	g.birdVel = 0
	g.pipes.Clear()
	g.score = 0
}

// BirdBox returns the bird's full box.
func (g *Game) BirdBox() core.RectF {
	p := g.cfg.Player
	return core.NewRectF(p.X, g.birdY, p.Width, p.Height)
}

func (g *Game) hitbox() core.RectF {
	return g.BirdBox().Inset(g.cfg.Player.HitboxMargin)
}

// Tuning returns the pipe tuning in effect for the last tick.
func (g *Game) Tuning() Tuning {
	return g.tuning
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	proj := core.NewProjection(g.vp, dst.Width(), dst.Height())
	g.clouds.Render(dst, proj, g.rt.Sprites)

	w := g.cfg.Pipes.Width
	for _, p := range g.pipes.Pipes() {
		top := proj.Rect(p.TopRect(w))
		bottom := proj.Rect(p.BottomRect(w, g.vp.H))
		dst.FillRect(top, '█', core.ColorGreen)
		dst.FillRect(bottom, '█', core.ColorGreen)
		// Caps
		dst.FillRect(core.NewRect(top.X, top.Bottom()-1, top.W, 1), '▄', core.ColorBrightGreen)
		dst.FillRect(core.NewRect(bottom.X, bottom.Y, bottom.W, 1), '▀', core.ColorBrightGreen)
	}

	grass := dst.Height() - 1
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, grass, '▒', core.ColorGreen)
	}

	core.DrawSprite(dst, g.rt.Sprites, "flappy_bird", 0, proj.Rect(g.BirdBox()), core.ColorYellow)

	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(2, 0, scoreText)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	}, registry.Order(2))
}
