// Package input routes raw key events to per-player game actions.
//
// Primary actions are edge-triggered: one press yields exactly one frame with
// the action set. Hold actions are level-triggered. Surfaces that report key
// releases clear holds on release; terminals that only report presses latch a
// hold for HoldFrames frames, refreshed by key repeat.
package input

import (
	"sync"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

// HoldFrames is how long a press-only hold stays latched without a repeat.
// Covers the usual keyboard auto-repeat delay.
const HoldFrames = 32

// Gate filters actions by orchestrator phase.
type Gate int

const (
	GateMenu Gate = iota
	GateCountdown
	GateRunning
	GatePaused
	GateResults
)

// String returns a human-readable name for the gate.
func (g Gate) String() string {
	switch g {
	case GateMenu:
		return "Menu"
	case GateCountdown:
		return "Countdown"
	case GateRunning:
		return "Running"
	case GatePaused:
		return "Paused"
	case GateResults:
		return "Results"
	default:
		return "Unknown"
	}
}

var gated = map[Gate]map[core.Action]bool{
	GateMenu: set(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionPrimary, core.ActionConfirm, core.ActionBack, core.ActionQuit),
	GateCountdown: set(core.ActionPause, core.ActionBack, core.ActionQuit),
	GatePaused: set(core.ActionPause, core.ActionConfirm, core.ActionBack,
		core.ActionRestart, core.ActionQuit),
	GateResults: set(core.ActionUp, core.ActionDown, core.ActionPrimary, core.ActionConfirm,
		core.ActionBack, core.ActionRestart, core.ActionQuit),
}

func set(actions ...core.Action) map[core.Action]bool {
	m := make(map[core.Action]bool, len(actions))
	for _, a := range actions {
		m[a] = true
	}
	return m
}

// Allowed reports whether a reaches the game under gate g. Running allows everything.
func (g Gate) Allowed(a core.Action) bool {
	if g == GateRunning {
		return true
	}
	return gated[g][a]
}

type pending struct {
	edges map[core.Action]bool
	holds map[core.Action]int // frames left; <0 until released
}

func newPending() *pending {
	return &pending{
		edges: make(map[core.Action]bool),
		holds: make(map[core.Action]int),
	}
}

// Router latches key events between frames. Safe for concurrent use: the
// web bridge delivers keys from its read goroutine.
type Router struct {
	mu       sync.Mutex
	keymap   Keymap
	keyUps   bool
	players  map[core.PlayerID]*pending
	lastSeen map[string]bool
}

// NewRouter creates a router for a keymap in press-only mode.
func NewRouter(km Keymap) *Router {
	return &Router{
		keymap:   km,
		players:  make(map[core.PlayerID]*pending),
		lastSeen: make(map[string]bool),
	}
}

// SetKeyUps tells the router the surface reports releases,
// so holds last until Release instead of HoldFrames.
func (r *Router) SetKeyUps(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keyUps = enabled
}

func (r *Router) player(p core.PlayerID) *pending {
	st, ok := r.players[p]
	if !ok {
		st = newPending()
		r.players[p] = st
	}
	return st
}

// Press records a key press. Returns false for unbound keys.
func (r *Router) Press(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A browser repeat keydown must not re-trigger anything.
	repeat := r.keyUps && r.lastSeen[key]

	bound := false
	for _, b := range r.keymap {
		if b.Key != key {
			continue
		}
		bound = true
		if repeat {
			continue
		}
		st := r.player(b.Player)
		st.edges[b.Action] = true
		if !b.Hold {
			continue
		}
		if r.keyUps {
			st.holds[b.Action] = -1
		} else {
			st.holds[b.Action] = HoldFrames
		}
	}
	if r.keyUps {
		r.lastSeen[key] = true
	}
	return bound
}

// Release records a key release. Only meaningful with SetKeyUps(true).
func (r *Router) Release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lastSeen, key)
	for _, b := range r.keymap {
		if b.Key == key && b.Hold {
			delete(r.player(b.Player).holds, b.Action)
		}
	}
}

// Frame returns the actions for player p since the last frame, filtered by
// gate, and ages press-only holds by one frame. Edges are consumed even when
// the gate drops them, so a press during the countdown never fires later.
func (r *Router) Frame(p core.PlayerID, g Gate) core.InputFrame {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.player(p)
	in := core.NewInputFrame()
	for a := range st.edges {
		if g.Allowed(a) {
			in.Set(a)
		}
		delete(st.edges, a)
	}
	for a, left := range st.holds {
		if g.Allowed(a) {
			in.Hold(a)
		}
		switch {
		case left < 0:
		case left <= 1:
			delete(st.holds, a)
		default:
			st.holds[a] = left - 1
		}
	}
	return in
}

// Reset drops every pending edge and hold.
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = make(map[core.PlayerID]*pending)
	r.lastSeen = make(map[string]bool)
}
