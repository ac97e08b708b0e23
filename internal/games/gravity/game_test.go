package gravity

import (
	"math"
	"testing"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultGravityConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func idle() core.InputFrame { return core.NewInputFrame() }

func flip() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionPrimary)
	return in
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, int) {
		g := newTestGame(777)
		var st core.GameState
		for i := 0; i < 900; i++ {
			in := idle()
			if i%45 == 0 {
				in = flip()
			}
			st = g.Step(in, 1).State
			if st.GameOver {
				break
			}
		}
		return st, g.tickCount
	}

	s1, t1 := run()
	s2, t2 := run()
	if s1 != s2 || t1 != t2 {
		t.Errorf("Determinism failed: %+v@%d vs %+v@%d", s1, t1, s2, t2)
	}
}

func TestFlipTwiceRestoresSign(t *testing.T) {
	g := newTestGame(1)
	g.player.VY = 3.5

	g.Flip()
	if g.Dir() != -1 || g.player.VY != 0 {
		t.Fatalf("after first flip dir=%d vy=%v", g.Dir(), g.player.VY)
	}
	g.Flip()
	if g.Dir() != 1 || g.player.VY != 0 {
		t.Fatalf("after second flip dir=%d vy=%v", g.Dir(), g.player.VY)
	}
}

func TestFlipReachesCeiling(t *testing.T) {
	g := newTestGame(1)
	g.Step(flip(), 1)
	if g.player.Grounded {
		t.Fatal("flip should leave the ground")
	}
	for i := 0; i < 100 && !g.player.Grounded; i++ {
		g.Step(idle(), 1)
	}
	if !g.player.Grounded || g.player.Y != 20 {
		t.Errorf("expected to rest on ceiling at 20, grounded=%v y=%v", g.player.Grounded, g.player.Y)
	}
}

func TestCrouchAnchorsToPlane(t *testing.T) {
	g := newTestGame(1)
	crouch := core.NewInputFrame()
	crouch.Hold(core.ActionCrouch)

	g.Step(crouch, 1)
	if g.player.Height != 35 || g.player.Y != 244 {
		t.Errorf("floor crouch: h=%v y=%v, want 35, 244", g.player.Height, g.player.Y)
	}

	g.Step(flip(), 1)
	if g.player.Crouching || g.player.Height != 59 {
		t.Error("flip should clear crouch")
	}
	for i := 0; i < 100 && !g.player.Grounded; i++ {
		g.Step(idle(), 1)
	}
	g.Step(crouch, 1)
	if g.player.Height != 35 || g.player.Y != 20 {
		t.Errorf("ceiling crouch: h=%v y=%v, want 35, 20", g.player.Height, g.player.Y)
	}
}

func TestSpeedSteps(t *testing.T) {
	g := newTestGame(1)
	for _, tt := range []struct{ score, want float64 }{{0, 6}, {17.9, 6}, {18, 7}, {90, 11}} {
		g.score = tt.score
		g.asteroids = nil
		g.Step(idle(), 1)
		if g.speed != tt.want {
			t.Errorf("speed at %v = %v, want %v", tt.score, g.speed, tt.want)
		}
	}
}

func TestAsteroidPassedOnce(t *testing.T) {
	g := newTestGame(1)
	g.asteroids = []Asteroid{{Box: core.NewRectF(30, 100, 20, 20), Lane: LaneMid}}

	total := 0
	for i := 0; i < 20; i++ {
		total += g.Step(idle(), 1).Passed
	}
	if total != 1 {
		t.Errorf("asteroid scored %d times, want 1", total)
	}
	if math.Abs(g.score-3) > 1e-9 {
		t.Errorf("score = %v, want 1 + 20*0.1", g.score)
	}
}

func TestAsteroidCollision(t *testing.T) {
	g := newTestGame(1)
	g.asteroids = []Asteroid{{Box: core.NewRectF(96, 230, 40, 40), Lane: LaneLow}}
	if !g.Step(idle(), 1).State.GameOver {
		t.Error("asteroid touching the hitbox edge should be terminal")
	}
}

func TestLanePlacement(t *testing.T) {
	cfg := config.DefaultGravityConfig()
	planes := Planes{GroundY: 220, CeilingY: 20, Floor: 280}

	for _, dir := range []int{1, -1} {
		f := NewField(cfg.Asteroids, planes, core.NewRand(int64(10+dir)))
		for i := 0; i < 500; i++ {
			a := f.Spawn(dir, 510)
			s := a.Box.W
			if a.Box.H != s || s < 34 || s >= 72 {
				t.Fatalf("bad asteroid size %+v", a.Box)
			}
			nearGround := a.Box.Y >= 220-0.4*s && a.Box.Y <= 220-0.1*s
			nearCeiling := a.Box.Y >= 20 && a.Box.Y <= 20+0.4*s
			switch {
			case a.Lane == LaneMid:
				if math.Abs(a.Box.Y+s/2-150) > 0.15*s+1e-9 {
					t.Errorf("mid asteroid off centre: %+v", a.Box)
				}
			case (a.Lane == LaneLow) == (dir == 1):
				if !nearGround {
					t.Errorf("dir %d lane %v expected near ground: %+v", dir, a.Lane, a.Box)
				}
			default:
				if !nearCeiling {
					t.Errorf("dir %d lane %v expected near ceiling: %+v", dir, a.Lane, a.Box)
				}
			}
		}
	}
}

func TestLaneBias(t *testing.T) {
	f := NewField(config.DefaultGravityConfig().Asteroids, Planes{220, 20, 280}, core.NewRand(5))
	repeats := 0
	prev := f.Spawn(1, 500).Lane
	const n = 3000
	for i := 0; i < n; i++ {
		lane := f.Spawn(1, 500).Lane
		if lane == prev {
			repeats++
		}
		prev = lane
	}
	// Unbiased would repeat a third of the time; the bias cuts that to ~13%.
	if ratio := float64(repeats) / n; ratio > 0.22 {
		t.Errorf("lane repeat ratio %.3f, expected bias against repeats", ratio)
	}
}

func TestDemoFlips(t *testing.T) {
	g := NewWithConfig(config.DefaultGravityConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 2, Demo: true})

	for i := 0; i < 151; i++ {
		if g.Step(idle(), 1).State.GameOver {
			t.Fatal("demo should never end")
		}
	}
	if g.Dir() != -1 {
		t.Errorf("demo should have flipped after 150 ticks, dir=%d", g.Dir())
	}
	if len(g.asteroids) != 0 {
		t.Error("demo should have no asteroids")
	}
}

func TestTrickleCountsOnFatalTick(t *testing.T) {
	g := newTestGame(1)
	g.score = 1 - g.cfg.Scoring.PerTick/2
	g.asteroids = []Asteroid{{Box: core.NewRectF(96, 230, 40, 40), Lane: LaneLow}}

	st := g.Step(idle(), 1).State
	if !st.GameOver {
		t.Fatal("asteroid on the hitbox should end the run")
	}
	if st.Score != 1 {
		t.Errorf("score = %d (raw %v), want 1", st.Score, g.score)
	}
}
