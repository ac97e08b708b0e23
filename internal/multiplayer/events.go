package multiplayer

import "github.com/vovakirdan/erika-arcade/internal/leaderboard"

// Event is emitted by Match.Step for the surface to act on.
type Event interface {
	matchEvent()
}

// PhaseChangedEvent is emitted on every phase transition.
type PhaseChangedEvent struct {
	From, To Phase
}

func (PhaseChangedEvent) matchEvent() {}

// MatchEndedEvent is emitted on the terminal tick.
type MatchEndedEvent struct {
	Outcome Outcome
}

func (MatchEndedEvent) matchEvent() {}

// SubmitRequestedEvent asks the surface to run the leaderboard flow in the
// background and report back with Match.Complete.
type SubmitRequestedEvent struct {
	Submission Submission
}

func (SubmitRequestedEvent) matchEvent() {}

// ExitEvent is emitted when the player backs out of the mode's menu.
type ExitEvent struct{}

func (ExitEvent) matchEvent() {}

// Submission is a pending leaderboard request. Generation ties it to the
// run that produced it; a result for an older generation is ignored.
type Submission struct {
	Generation uint64
	Record     leaderboard.Record
}
