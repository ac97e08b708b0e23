// Package gravity implements Gravity Flip: the runner sticks to the floor or
// the ceiling and flips between them to dodge asteroids.
package gravity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/games/scenery"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

const runFrames = 8

// Player is the flipping actor. Y is the top of the box.
type Player struct {
	Y, VY     float64
	Height    float64
	Grounded  bool
	Crouching bool
	Anim      float64
}

// Game implements the Gravity Flip mode.
type Game struct {
	cfg      config.GravityConfig
	fixedCfg bool
	diff     *config.DifficultyManager
	rt       core.RuntimeConfig
	vp       core.Viewport

	player    Player
	dir       int // 1 = down, -1 = up
	asteroids []Asteroid
	field     *Field
	sky       *scenery.Starfield

	score     float64
	speed     float64
	gameOver  bool
	tickCount int
	demoTimer float64
}

// New creates a Gravity Flip game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config, skipping the search path.
func NewWithConfig(cfg config.GravityConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gravity"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gravity Flip"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.fixedCfg {
		preset := config.ParsePreset(rt.Difficulty)
		cfg, err := config.LoadGravity(rt.ConfigPath, preset)
		if err != nil {
			cfg = config.DefaultGravityConfig()
			config.ApplyPreset(&cfg.Difficulty, preset)
		}
		g.cfg = cfg
	}
	g.rt = rt
	g.vp = rt.Viewport()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.player = Player{
		Y:        g.cfg.Player.GroundY,
		Height:   g.cfg.Player.Height,
		Grounded: true,
	}
	g.dir = 1
	g.asteroids = g.asteroids[:0]
	g.field = NewField(g.cfg.Asteroids, Planes{
		GroundY:  g.cfg.Player.GroundY,
		CeilingY: g.cfg.Player.CeilingY,
		Floor:    g.cfg.World.GroundLineY,
	}, rt.RNG())
	g.sky = scenery.NewStarfield(g.cfg.World.Stars, g.cfg.World.Planets, g.vp, core.NewRand(rt.Seed+1))

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

// Flip reverses gravity. Velocity is reset and any crouch is cleared.
func (g *Game) Flip() {
	g.dir = -g.dir
	g.player.VY = 0
	g.player.Grounded = false
	g.player.Crouching = false
	g.player.Height = g.cfg.Player.Height
}

// Dir returns the gravity sign: 1 pulls down, -1 pulls up.
func (g *Game) Dir() int {
	return g.dir
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
		g.Flip()
	}
	if g.player.Grounded {
		g.player.Crouching = in.IsHeld(core.ActionCrouch)
	}

	g.speed = g.diff.Speed(g.score)
	g.sky.Update(g.speed, dt, g.vp)
	g.updatePlayer(dt)

	if a, ok := g.field.Update(dt, g.speed, g.dir, g.vp.W); ok {
		g.asteroids = append(g.asteroids, a)
	}
	passed := g.updateAsteroids(dt)

	// The trickle also counts on the tick that ends the run.
	g.score += g.cfg.Scoring.PerTick * dt
	return core.StepResult{State: g.State(), Passed: passed}
}

func (g *Game) stepDemo(dt float64) {
	g.speed = g.diff.BaseSpeed()
	g.sky.Update(g.speed, dt, g.vp)

	g.demoTimer += dt
	if g.demoTimer > g.cfg.World.DemoEvery {
		g.demoTimer = 0
		g.Flip()
	}
	g.updatePlayer(dt)
	g.asteroids = g.asteroids[:0]
	g.score = 0
}

func (g *Game) updatePlayer(dt float64) {
	p := &g.player
	pc := g.cfg.Player
	dir := float64(g.dir)

	p.VY += g.cfg.Physics.Gravity * dir * dt
	p.Y += p.VY * dt

	switch {
	case g.dir == 1 && p.Y >= pc.GroundY:
		p.Y, p.VY, p.Grounded = pc.GroundY, 0, true
	case g.dir == -1 && p.Y <= pc.CeilingY:
		p.Y, p.VY, p.Grounded = pc.CeilingY, 0, true
	default:
		p.Grounded = false
	}

	if p.Grounded {
		p.Height = pc.Height
		if p.Crouching {
			p.Height = pc.CrouchHeight
		}
		if g.dir == 1 {
			p.Y = pc.GroundY + (pc.Height - p.Height)
		} else {
			p.Y = pc.CeilingY
		}

		factor := g.cfg.Physics.SpeedFactorBase + g.speed/g.cfg.Physics.SpeedFactorDiv
		p.Anim = math.Mod(p.Anim+g.cfg.Physics.AnimSpeed*factor*dt, runFrames)
	}
}

// ActorBox returns the actor's full box.
func (g *Game) ActorBox() core.RectF {
	return core.NewRectF(g.cfg.Player.X, g.player.Y, g.cfg.Player.Width, g.player.Height)
}

func (g *Game) updateAsteroids(dt float64) int {
	hitbox := g.ActorBox().Inset(g.cfg.Player.HitboxMargin)
	passed := 0

	for i := len(g.asteroids) - 1; i >= 0; i-- {
		a := &g.asteroids[i]
		a.Box.X -= g.speed * dt
		a.Rotation += a.Spin * dt

		if hitbox.Touches(a.Box) {
			g.gameOver = true
			break
		}

		if !a.Passed && a.Box.Right() < g.cfg.Player.X {
			a.Passed = true
			passed++
			g.score += g.cfg.Scoring.PerObstacle
		}

		if a.Box.Right() < 0 {
			g.asteroids = append(g.asteroids[:i], g.asteroids[i+1:]...)
		}
	}
	return passed
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	proj := core.NewProjection(g.vp, dst.Width(), dst.Height())
	g.sky.Render(dst, proj, g.rt.Sprites)

	for _, y := range []float64{g.cfg.World.CeilingLineY, g.cfg.World.GroundLineY} {
		row := proj.Y(y)
		for x := 0; x < dst.Width(); x++ {
			dst.SetCell(x, row, '─', core.ColorBrightBlue)
		}
	}

	for _, a := range g.asteroids {
		frame := int(math.Mod(math.Abs(a.Rotation), 2*math.Pi) / (math.Pi / 2))
		core.DrawSprite(dst, g.rt.Sprites, "asteroid", frame, proj.Rect(a.Box), core.ColorGray)
	}

	name := "runner"
	if g.dir < 0 {
		name = "runner_flipped"
	}
	core.DrawSprite(dst, g.rt.Sprites, name, int(g.player.Anim), proj.Rect(g.ActorBox()), core.ColorRed)

	dst.DrawTextColor(dst.Width()-7, 0, fmt.Sprintf("%05d", int(g.score)), core.ColorBrightWhite)
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
	registry.Register("gravity", func() registry.Game {
		return New()
	}, registry.Order(3))
}
