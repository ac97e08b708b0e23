// Package runner implements the endless runner: jump cacti, duck birds.
package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/games/scenery"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

const runFrames = 8

// Player is the runner actor. Y is the top of the box.
type Player struct {
	Y, VY     float64
	Height    float64
	Grounded  bool
	Crouching bool
	FastFall  bool
	Anim      float64
}

// Game implements the Runner mode.
type Game struct {
	cfg      config.RunnerConfig
	fixedCfg bool
	diff     *config.DifficultyManager
	rt       core.RuntimeConfig
	vp       core.Viewport
	rng      core.Rand

	player    Player
	obstacles []Obstacle
	spawner   *Spawner
	clouds    *scenery.Clouds

	score     float64
	speed     float64
	night     bool
	milestone int
	gameOver  bool
	tickCount int
	demoTimer float64
}

// New creates a Runner that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Runner with a fixed config, skipping the search path.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Erika Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.fixedCfg {
		g.cfg = loadConfig(rt)
	}
	g.rt = rt
	g.vp = rt.Viewport()
	g.rng = rt.RNG()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.player = Player{
		Y:        g.cfg.Player.GroundY,
		Height:   g.cfg.Player.Height,
		Grounded: true,
	}
	g.obstacles = g.obstacles[:0]
	g.spawner = NewSpawner(g.cfg.Obstacles, g.cfg.World.GroundLineY, g.rng)
	g.clouds = scenery.NewClouds(g.cfg.World.Clouds, g.vp, core.NewRand(rt.Seed+1), 0.12, 0.30)

	g.score = 0
	g.speed = g.diff.Speed(0)
	g.night = false
	g.milestone = 0
	g.gameOver = false
	g.tickCount = 0
	g.demoTimer = 0
}

func loadConfig(rt core.RuntimeConfig) config.RunnerConfig {
	preset := config.ParsePreset(rt.Difficulty)
	cfg, err := config.LoadRunner(rt.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
		config.ApplyPreset(&cfg.Difficulty, preset)
	}
	return cfg
}

// Resize recomputes layout for a new viewport. Live obstacles keep their positions.
func (g *Game) Resize(vp core.Viewport) {
	g.vp = vp
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

	g.speed = g.diff.Speed(g.score)
	if every := g.cfg.World.DayNightEvery; every > 0 {
		if m := int(g.score / every); m > g.milestone {
			g.milestone = m
			g.night = !g.night
		}
	}
	g.clouds.Update(g.speed, dt, g.vp)

	g.updatePlayer(in, dt)

	for _, o := range g.spawner.Update(dt, g.speed, g.score, g.vp.W) {
		g.obstacles = append(g.obstacles, o)
	}

	passed := g.updateObstacles(dt)
	// The trickle also counts on the tick that ends the run.
	g.score += g.cfg.Scoring.PerTick * dt

	return core.StepResult{State: g.State(), Passed: passed}
}

func (g *Game) updatePlayer(in core.InputFrame, dt float64) {
	p := &g.player
	pc := g.cfg.Player
	groundBottom := pc.GroundY + pc.Height
	crouchHeld := in.IsHeld(core.ActionCrouch)

	if in.Has(core.ActionPrimary) && p.Grounded {
		p.Crouching = false
		p.Height = pc.Height
		p.Y = groundBottom - p.Height
		p.VY = g.cfg.Physics.JumpImpulse
		p.Grounded = false
	}

	if p.Grounded {
		p.Crouching = crouchHeld
		p.FastFall = false
	} else {
		p.FastFall = crouchHeld
	}
	if p.Crouching {
		p.Height = pc.CrouchHeight
	} else {
		p.Height = pc.Height
	}

	if p.Grounded {
		p.Y = groundBottom - p.Height
	} else {
		gravity := g.cfg.Physics.Gravity
		if p.FastFall {
			gravity *= g.cfg.Physics.FastFallMultiplier
		}
		p.VY += gravity * dt
		p.Y += p.VY * dt

		if p.Y+p.Height >= groundBottom {
			p.Y = groundBottom - p.Height
			p.VY = 0
			p.Grounded = true
			p.FastFall = false
		}
	}

	if p.Grounded {
		p.Anim = math.Mod(p.Anim+g.cfg.Physics.AnimSpeed*dt, runFrames)
	}
}

// ActorBox returns the actor's full box.
func (g *Game) ActorBox() core.RectF {
	return core.NewRectF(g.cfg.Player.X, g.player.Y, g.cfg.Player.Width, g.player.Height)
}

// updateObstacles moves, collides, scores and culls obstacles back to front.
// The first collision is terminal and stops evaluation for the tick.
func (g *Game) updateObstacles(dt float64) int {
	hitbox := g.ActorBox().Inset(g.cfg.Player.HitboxMargin)
	passed := 0

	for i := len(g.obstacles) - 1; i >= 0; i-- {
		o := &g.obstacles[i]
		o.Box.X -= g.speed * dt

		if hitbox.Touches(o.Box) {
			g.gameOver = true
			break
		}

		if !o.Passed && o.Box.Right() < g.cfg.Player.X {
			o.Passed = true
			passed++
			if o.Kind == KindBird {
				g.score += g.cfg.Scoring.PerBird
			} else {
				g.score += g.cfg.Scoring.PerObstacle
			}
		}

		if o.Box.Right() < 0 {
			g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
		}
	}
	return passed
}

// stepDemo runs the menu background: the actor hops periodically, nothing spawns.
func (g *Game) stepDemo(dt float64) {
	g.speed = g.diff.BaseSpeed()
	g.clouds.Update(g.speed, dt, g.vp)

	in := core.NewInputFrame()
	g.demoTimer += dt
	if g.demoTimer >= g.cfg.World.DemoEvery {
		g.demoTimer = 0
		in.Set(core.ActionPrimary)
	}
	g.updatePlayer(in, dt)
	g.obstacles = g.obstacles[:0]
	g.score = 0
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	proj := core.NewProjection(g.vp, dst.Width(), dst.Height())
	fg := core.ColorGray
	if g.night {
		fg = core.ColorBrightWhite
	}

	g.clouds.Render(dst, proj, g.rt.Sprites)

	groundRow := proj.Y(g.cfg.World.GroundLineY)
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, groundRow, '▔', fg)
	}

	for _, o := range g.obstacles {
		name, color := "cactus", core.ColorGreen
		if o.Kind == KindBird {
			name, color = "bird", core.ColorOrange
		}
		core.DrawSprite(dst, g.rt.Sprites, name, 0, proj.Rect(o.Box), color)
	}

	name, frame := "runner", int(g.player.Anim)
	switch {
	case g.player.Crouching:
		name = "runner_crouch"
	case !g.player.Grounded:
		name = "runner_jump"
	}
	core.DrawSprite(dst, g.rt.Sprites, name, frame, proj.Rect(g.ActorBox()), core.ColorRed)

	dst.DrawTextColor(dst.Width()-7, 0, fmt.Sprintf("%05d", int(g.score)), fg)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score),
		GameOver: g.gameOver,
	}
}

// Speed returns the current world speed.
func (g *Game) Speed() float64 {
	return g.speed
}

// Night reports whether the night palette is active.
func (g *Game) Night() bool {
	return g.night
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	}, registry.Order(1))
}
