// Package registry is the catalog of arcade modes. Each mode registers a
// factory from its package init; surfaces look modes up by ID and never
// import a mode package directly.
package registry

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

// Game is one arcade mode. Implementations are pure simulations: they see
// frames of actions and a dt, and draw into a Screen. Timing, input
// mapping, phases and persistence belong to the caller.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// leaderboard table name.
	ID() string

	// Title is the display name, e.g. "Gravity Flip".
	Title() string

	// Reset creates fresh state for a menu demo, match start or restart.
	Reset(cfg core.RuntimeConfig)

	// Resize supplies a new logical viewport. Layout-dependent values
	// such as spawn X are recomputed from it rather than cached.
	Resize(vp core.Viewport)

	// Step advances the simulation by dt (1.0 = 1/60s). Once the state is
	// terminal, Step is a no-op returning the final state.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current score and terminal flag.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string

	// Race reports whether the mode can run as a two-player split screen.
	Race bool

	// Order positions the mode in pickers; lower comes first.
	Order int
}

// Factory creates a new instance of a mode.
type Factory func() Game

// Option adjusts how a mode is listed.
type Option func(*GameInfo)

// SoloOnly marks a mode that has no race variant.
func SoloOnly() Option {
	return func(info *GameInfo) { info.Race = false }
}

// Order sets the picker position.
func Order(n int) Option {
	return func(info *GameInfo) { info.Order = n }
}

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. Modes race by default and sort after every
// explicitly ordered mode. Panics on a duplicate ID.
func Register(id string, f Factory, opts ...Option) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	info := GameInfo{
		ID:    id,
		Title: f().Title(),
		Race:  true,
		Order: math.MaxInt,
	}
	for _, opt := range opts {
		opt(&info)
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered mode in picker order, ties broken by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the description of a registered mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// SupportsRace reports whether id is registered and has a race variant.
func SupportsRace(id string) bool {
	info, ok := Lookup(id)
	return ok && info.Race
}
