// Package multiplayer sequences matches: menu demo, countdown, running,
// pause and resume, terminal, leaderboard submission and results. It also
// runs the two-player split-screen race.
package multiplayer

import (
	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/input"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// MatchMode defines how a match is configured.
type MatchMode int

const (
	// MatchModeSolo is one player, one core.
	MatchModeSolo MatchMode = iota

	// MatchModeRace is two players on one screen, same mode, independent cores.
	MatchModeRace
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeRace:
		return "Race"
	default:
		return "Unknown"
	}
}

// Phase is the orchestrator state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCountdown
	PhaseRunning
	PhasePaused
	PhaseResuming
	PhaseOver
	PhaseSubmitting
	PhaseResults
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseCountdown:
		return "Countdown"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseResuming:
		return "Resuming"
	case PhaseOver:
		return "Over"
	case PhaseSubmitting:
		return "Submitting"
	case PhaseResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Gate returns the input gate for the phase.
func (p Phase) Gate() input.Gate {
	switch p {
	case PhaseMenu:
		return input.GateMenu
	case PhaseCountdown, PhaseResuming:
		return input.GateCountdown
	case PhaseRunning:
		return input.GateRunning
	case PhasePaused:
		return input.GatePaused
	default:
		return input.GateResults
	}
}

// EndReason describes why a run ended.
type EndReason int

const (
	EndReasonTerminal  EndReason = iota // solo core reached its terminal tick
	EndReasonKnockout                   // race: a player died first
	EndReasonTimeLimit                  // race: the clock ran out
)

func (r EndReason) String() string {
	switch r {
	case EndReasonTerminal:
		return "Game over"
	case EndReasonKnockout:
		return "Knockout"
	case EndReasonTimeLimit:
		return "Time up"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a finished run.
type Outcome struct {
	Reason  EndReason
	Winner  PlayerID // 0 for solo runs and draws
	Scores  []int    // indexed by player - 1
	Best    int      // solo: stored best after this run
	NewBest bool
}

// Draw reports whether a race ended level.
func (o Outcome) Draw() bool {
	return len(o.Scores) > 1 && o.Winner == 0
}
