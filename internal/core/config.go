package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Rand overrides the seeded source. Tests inject scripted sources here.
	Rand Rand

	// Demo runs the mode as a menu background: scripted actor, never terminal.
	Demo bool

	ConfigPath string // Custom mode config YAML (empty = search path)
	Difficulty string // Difficulty preset name (empty = config default)

	// Sprites is the sprite catalog. Nil or not-ready draws flat blocks.
	Sprites SpriteSource
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport returns the logical canvas for the configured screen size.
func (c RuntimeConfig) Viewport() Viewport {
	return ViewportFor(c.ScreenW, c.ScreenH)
}

// RNG returns the injected random source or a new one seeded from Seed.
func (c RuntimeConfig) RNG() Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return NewRand(c.Seed)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score, floored
	GameOver bool // Whether the run has reached its terminal tick
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Passed counts obstacles that were scored during this tick.
	Passed int
}
