// Package scenery provides the decorative background shared by the
// scrolling modes: drifting clouds and a parallax starfield with planets.
// Scenery carries no gameplay state and draws from its own random source
// so it never perturbs obstacle generation.
package scenery

import (
	"math"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

// Cloud is a single drifting cloud.
type Cloud struct {
	X, Y, Size, Speed float64
}

// Clouds is a recycled set of clouds.
type Clouds struct {
	items            []Cloud
	rng              core.Rand
	speedLo, speedHi float64
}

// NewClouds scatters n clouds across vp.
func NewClouds(n int, vp core.Viewport, rng core.Rand, speedLo, speedHi float64) *Clouds {
	c := &Clouds{rng: rng, speedLo: speedLo, speedHi: speedHi}
	for i := 0; i < n; i++ {
		cl := c.newCloud()
		cl.X = rng.Float64() * vp.W
		c.items = append(c.items, cl)
	}
	return c
}

func (c *Clouds) newCloud() Cloud {
	return Cloud{
		Y:     core.Uniform(c.rng, 20, 100),
		Size:  core.Uniform(c.rng, 18, 40),
		Speed: core.Uniform(c.rng, c.speedLo, c.speedHi),
	}
}

// Update drifts clouds left by scale*cloud.Speed*dt, recycling any that leave the canvas.
func (c *Clouds) Update(scale, dt float64, vp core.Viewport) {
	for i := range c.items {
		cl := &c.items[i]
		cl.X -= scale * cl.Speed * dt
		if cl.X+cl.Size < 0 {
			*cl = c.newCloud()
			cl.X = vp.W + c.rng.Float64()*40
		}
	}
}

// Items returns the current clouds.
func (c *Clouds) Items() []Cloud {
	return c.items
}

// Render draws the clouds.
func (c *Clouds) Render(dst *core.Screen, proj core.Projection, sprites core.SpriteSource) {
	for _, cl := range c.items {
		area := proj.Rect(core.NewRectF(cl.X, cl.Y, cl.Size*1.6, cl.Size))
		core.DrawSprite(dst, sprites, "cloud", 0, area, core.ColorGray)
	}
}

// Star is a background star.
type Star struct {
	X, Y, Size float64
}

// Planet is a background planet centered at X, Y.
type Planet struct {
	X, Y, Size float64
	Color      core.Color
}

var planetColors = []core.Color{
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorGreen,
	core.ColorRed,
	core.ColorBlue,
}

// Starfield is the parallax space background.
type Starfield struct {
	stars   []Star
	planets []Planet
	rng     core.Rand
}

// NewStarfield creates stars scattered over vp and planets queued off the right edge.
func NewStarfield(stars, planets int, vp core.Viewport, rng core.Rand) *Starfield {
	s := &Starfield{rng: rng}
	for i := 0; i < stars; i++ {
		s.stars = append(s.stars, Star{
			X:    rng.Float64() * vp.W,
			Y:    rng.Float64() * vp.H,
			Size: core.Uniform(rng, 0.5, 2.5),
		})
	}

	cursorX := vp.W + 300
	for tries := 0; len(s.planets) < planets && tries < 200; tries++ {
		size := core.Uniform(rng, 26, 64)
		p := Planet{
			X:     cursorX + size/2,
			Y:     rng.Float64()*(vp.H-size) + size/2,
			Size:  size,
			Color: planetColors[rng.Intn(len(planetColors))],
		}
		if s.overlaps(p, -1) {
			continue
		}
		s.planets = append(s.planets, p)
		cursorX += size + 140 + rng.Float64()*110
	}
	return s
}

func (s *Starfield) overlaps(p Planet, skip int) bool {
	for i, o := range s.planets {
		if i == skip {
			continue
		}
		if math.Hypot(o.X-p.X, o.Y-p.Y) < o.Size/2+p.Size/2+10 {
			return true
		}
	}
	return false
}

// Update shifts the field left by speed*dt*0.5.
// Stars wrap to the right edge; planets respawn behind the rightmost planet.
func (s *Starfield) Update(speed, dt float64, vp core.Viewport) {
	shift := speed * dt * 0.5

	for i := range s.stars {
		st := &s.stars[i]
		st.X -= shift
		if st.X < -2 {
			st.X = vp.W + 80
			st.Y = s.rng.Float64() * vp.H
		}
	}

	maxX := 0.0
	for _, p := range s.planets {
		maxX = math.Max(maxX, p.X)
	}
	for i := range s.planets {
		p := &s.planets[i]
		p.X -= shift
		if p.X+p.Size/2 < 0 {
			p.X = math.Max(maxX, vp.W) + 140 + p.Size
			maxX = p.X
			p.Y = s.freeY(i, vp)
		}
	}
}

func (s *Starfield) freeY(i int, vp core.Viewport) float64 {
	p := s.planets[i]
	for tries := 0; tries < 50; tries++ {
		p.Y = s.rng.Float64()*(vp.H-p.Size) + p.Size/2
		if !s.overlaps(p, i) {
			return p.Y
		}
	}
	return s.rng.Float64()*(vp.H-p.Size) + p.Size/2
}

// Stars returns the current stars.
func (s *Starfield) Stars() []Star {
	return s.stars
}

// Planets returns the current planets.
func (s *Starfield) Planets() []Planet {
	return s.planets
}

// Render draws stars and planets.
func (s *Starfield) Render(dst *core.Screen, proj core.Projection, sprites core.SpriteSource) {
	for _, st := range s.stars {
		r := '.'
		if st.Size > 1.8 {
			r = '*'
		}
		dst.SetCell(proj.X(st.X), proj.Y(st.Y), r, core.ColorWhite)
	}
	for _, p := range s.planets {
		area := proj.Rect(core.NewRectF(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size))
		core.DrawSprite(dst, sprites, "planet", 0, area, p.Color)
	}
}
