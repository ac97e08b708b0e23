package multiplayer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/input"
	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

// Config holds match settings. Durations are in frames of dt.
type Config struct {
	GameID  string
	Mode    MatchMode
	Runtime core.RuntimeConfig
	Names   []string // indexed by player - 1

	CountdownFrom int     // countdown steps before running and after resume
	StepFrames    float64 // frames per countdown step
	OverDwell     float64 // frames between the terminal tick and submission
	RaceLimit     float64 // race length; 0 runs until a player dies
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(gameID string, mode MatchMode) Config {
	return Config{
		GameID:        gameID,
		Mode:          mode,
		Runtime:       core.DefaultConfig(),
		Names:         []string{leaderboard.DefaultName, "Player 2"},
		CountdownFrom: 3,
		StepFrames:    60,
		OverDwell:     45,
		RaceLimit:     90 * 60,
	}
}

// GameFactory creates core instances.
type GameFactory func(gameID string) (registry.Game, error)

// ScoreSaver persists the best score per mode.
// This allows the match to save results without depending on the storage package.
type ScoreSaver interface {
	HighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) (bool, error)
}

// Match owns all per-run state for one surface. Not safe for concurrent use;
// the surface steps it from a single loop.
type Match struct {
	cfg    Config
	router *input.Router
	sched  *Scheduler
	saver  ScoreSaver
	logger *log.Logger

	phase     Phase
	sessions  []*Session
	countdown int
	elapsed   float64
	runs      int64

	outcome Outcome
	pending *Submission
	result  leaderboard.Result
	events  []Event
}

// NewMatch creates a match in the menu phase with its demo running.
func NewMatch(cfg Config, create GameFactory, router *input.Router) (*Match, error) {
	if cfg.CountdownFrom <= 0 {
		cfg.CountdownFrom = 3
	}
	if cfg.StepFrames <= 0 {
		cfg.StepFrames = 60
	}

	players := 1
	if cfg.Mode == MatchModeRace {
		if registry.Exists(cfg.GameID) && !registry.SupportsRace(cfg.GameID) {
			return nil, fmt.Errorf("multiplayer: %s has no race mode", cfg.GameID)
		}
		players = 2
	}

	m := &Match{
		cfg:    cfg,
		router: router,
		sched:  NewScheduler(),
		logger: log.Default(),
	}
	for i := 0; i < players; i++ {
		g, err := create(cfg.GameID)
		if err != nil {
			return nil, fmt.Errorf("multiplayer: create %s: %w", cfg.GameID, err)
		}
		name := ""
		if i < len(cfg.Names) {
			name = cfg.Names[i]
		}
		m.sessions = append(m.sessions, &Session{
			Player: PlayerID(i + 1),
			Name:   name,
			Game:   g,
		})
	}

	m.enterMenu()
	m.events = nil
	return m, nil
}

// SetScoreSaver sets the optional high score store.
func (m *Match) SetScoreSaver(s ScoreSaver) {
	m.saver = s
}

// SetLogger replaces the default logger.
func (m *Match) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// runtimeFor builds the runtime config for the current run. Race players
// share a seed so both face the same course.
func (m *Match) runtimeFor(demo bool) core.RuntimeConfig {
	rt := m.cfg.Runtime
	rt.Demo = demo
	if rt.Seed != 0 {
		rt.Seed += m.runs
	}
	// The menu demo runs alone on the full surface.
	if m.cfg.Mode == MatchModeRace && !demo {
		rt.ScreenH /= 2
	}
	return rt
}

func (m *Match) setPhase(p Phase) {
	if p == m.phase {
		return
	}
	m.events = append(m.events, PhaseChangedEvent{From: m.phase, To: p})
	m.logger.Debug("match phase", "game", m.cfg.GameID, "from", m.phase, "to", p)
	m.phase = p
}

func (m *Match) enterMenu() {
	m.sched.Cancel()
	m.pending = nil
	m.router.Reset()
	m.sessions[0].Game.Reset(m.runtimeFor(true))
	m.setPhase(PhaseMenu)
}

// Start resets every core and begins the countdown. Valid from any phase.
func (m *Match) Start() {
	m.sched.Cancel()
	m.pending = nil
	m.result = leaderboard.Result{}
	m.outcome = Outcome{}
	m.elapsed = 0
	m.runs++

	rt := m.runtimeFor(false)
	for _, s := range m.sessions {
		s.Over = false
		s.Score = 0
		s.Game.Reset(rt)
	}
	m.router.Reset()
	m.setPhase(PhaseCountdown)
	m.countdownThen(func() { m.setPhase(PhaseRunning) })
}

// countdownThen chains one continuation per countdown step, then runs done.
func (m *Match) countdownThen(done func()) {
	m.countdown = m.cfg.CountdownFrom
	var step func()
	step = func() {
		m.countdown--
		if m.countdown <= 0 {
			done()
			return
		}
		m.sched.After(m.cfg.StepFrames, step)
	}
	m.sched.After(m.cfg.StepFrames, step)
}

// Pause stops a running or counting-down match.
func (m *Match) Pause() {
	switch m.phase {
	case PhaseRunning, PhaseCountdown, PhaseResuming:
		m.sched.Cancel()
		m.router.Reset()
		m.setPhase(PhasePaused)
	}
}

// Resume starts the resume countdown from pause.
func (m *Match) Resume() {
	if m.phase != PhasePaused {
		return
	}
	m.setPhase(PhaseResuming)
	m.countdownThen(func() { m.setPhase(PhaseRunning) })
}

// Quit returns to the mode menu, dropping the run and any pending submission.
func (m *Match) Quit() {
	m.enterMenu()
}

// Step advances the scheduler and the active phase by dt and returns the
// events raised during the tick.
func (m *Match) Step(dt float64) []Event {
	m.sched.Advance(dt)

	frames := make([]core.InputFrame, len(m.sessions))
	for i, s := range m.sessions {
		frames[i] = m.router.Frame(s.Player, m.phase.Gate())
	}
	ctl := frames[0]

	switch m.phase {
	case PhaseMenu:
		switch {
		case ctl.Has(core.ActionConfirm), ctl.Has(core.ActionPrimary):
			m.Start()
		case ctl.Has(core.ActionBack):
			m.events = append(m.events, ExitEvent{})
		default:
			m.sessions[0].Game.Step(core.NewInputFrame(), dt)
		}

	case PhaseCountdown, PhaseResuming:
		switch {
		case ctl.Has(core.ActionPause):
			m.Pause()
		case ctl.Has(core.ActionBack):
			m.Quit()
		}

	case PhaseRunning:
		if ctl.Has(core.ActionPause) {
			m.Pause()
			break
		}
		if m.cfg.Mode == MatchModeRace {
			m.stepRace(frames, dt)
		} else {
			m.stepSolo(ctl, dt)
		}

	case PhasePaused:
		switch {
		case ctl.Has(core.ActionPause), ctl.Has(core.ActionConfirm):
			m.Resume()
		case ctl.Has(core.ActionRestart):
			m.Start()
		case ctl.Has(core.ActionBack):
			m.Quit()
		}

	case PhaseOver, PhaseSubmitting:
		if ctl.Has(core.ActionBack) {
			m.Quit()
		}

	case PhaseResults:
		switch {
		case ctl.Has(core.ActionConfirm), ctl.Has(core.ActionRestart), ctl.Has(core.ActionPrimary):
			m.Start()
		case ctl.Has(core.ActionBack):
			m.Quit()
		}
	}

	events := m.events
	m.events = nil
	return events
}

func (m *Match) stepSolo(in core.InputFrame, dt float64) {
	s := m.sessions[0]
	res := s.Game.Step(in, dt)
	s.Score = res.State.Score
	if !res.State.GameOver {
		return
	}
	s.Over = true

	out := Outcome{Reason: EndReasonTerminal, Scores: []int{s.Score}}
	if m.saver != nil {
		newBest, err := m.saver.SaveHighScore(m.cfg.GameID, s.Score)
		if err != nil {
			m.logger.Warn("cannot save high score", "game", m.cfg.GameID, "err", err)
		}
		out.NewBest = newBest
		if best, err := m.saver.HighScore(m.cfg.GameID); err == nil {
			out.Best = best
		}
	}
	m.finish(out)
}

// stepRace steps Player1 then Player2. The first player to die loses; when
// both die on the same tick, or the clock runs out, the higher score wins.
func (m *Match) stepRace(frames []core.InputFrame, dt float64) {
	for i, s := range m.sessions {
		res := s.Game.Step(frames[i], dt)
		s.Score = res.State.Score
		s.Over = res.State.GameOver
	}
	m.elapsed += dt

	a, b := m.sessions[0], m.sessions[1]
	out := Outcome{Scores: []int{a.Score, b.Score}}
	switch {
	case a.Over && b.Over:
		out.Reason = EndReasonKnockout
		out.Winner = higher(a, b)
	case a.Over:
		out.Reason = EndReasonKnockout
		out.Winner = b.Player
	case b.Over:
		out.Reason = EndReasonKnockout
		out.Winner = a.Player
	case m.cfg.RaceLimit > 0 && m.elapsed >= m.cfg.RaceLimit:
		out.Reason = EndReasonTimeLimit
		out.Winner = higher(a, b)
	default:
		return
	}
	m.finish(out)
}

func higher(a, b *Session) PlayerID {
	switch {
	case a.Score > b.Score:
		return a.Player
	case b.Score > a.Score:
		return b.Player
	default:
		return 0
	}
}

func (m *Match) finish(out Outcome) {
	m.outcome = out
	m.setPhase(PhaseOver)
	m.events = append(m.events, MatchEndedEvent{Outcome: out})
	m.logger.Info("run ended", "game", m.cfg.GameID, "mode", m.cfg.Mode, "reason", out.Reason, "scores", out.Scores)
	m.sched.After(m.cfg.OverDwell, m.afterOver)
}

// afterOver requests submission for solo runs. Races are not submitted.
func (m *Match) afterOver() {
	if m.cfg.Mode == MatchModeRace {
		m.setPhase(PhaseResults)
		return
	}
	s := m.sessions[0]
	sub := Submission{
		Generation: m.sched.Generation(),
		Record: leaderboard.Record{
			Table: m.cfg.GameID,
			Name:  s.Name,
			Score: s.Score,
		},
	}
	m.pending = &sub
	m.setPhase(PhaseSubmitting)
	m.events = append(m.events, SubmitRequestedEvent{Submission: sub})
}

// Complete delivers a leaderboard result. Results for a stale generation,
// or arriving outside the submitting phase, are ignored and false is returned.
func (m *Match) Complete(gen uint64, res leaderboard.Result) bool {
	if m.phase != PhaseSubmitting || m.pending == nil || gen != m.pending.Generation || gen != m.sched.Generation() {
		return false
	}
	m.pending = nil
	m.result = res
	m.setPhase(PhaseResults)
	return true
}

// Resize supplies a new surface size to every core.
func (m *Match) Resize(cols, rows int) {
	m.cfg.Runtime.ScreenW = cols
	m.cfg.Runtime.ScreenH = rows
	vp := core.ViewportFor(cols, rows)
	if m.cfg.Mode == MatchModeRace && m.phase != PhaseMenu {
		vp = core.ViewportFor(cols, rows/2)
	}
	for _, s := range m.sessions {
		s.Game.Resize(vp)
	}
}

// Render draws the active core(s). The race draws Player1 on the top half
// and Player2 on the bottom half.
func (m *Match) Render(dst *core.Screen) {
	if m.phase == PhaseMenu || len(m.sessions) == 1 {
		m.sessions[0].Game.Render(dst)
		return
	}

	w, h := dst.Width(), dst.Height()
	top := h / 2
	halves := []struct{ y, h int }{{0, top}, {top, h - top}}
	for i, s := range m.sessions {
		sub := core.NewScreen(w, halves[i].h-1)
		s.Game.Render(sub)
		dst.Blit(sub, 0, halves[i].y)
		dst.DrawHLine(0, halves[i].y+halves[i].h-1, w, '─')
	}
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Countdown returns the remaining countdown steps.
func (m *Match) Countdown() int {
	return m.countdown
}

// Sessions returns the seats in player order.
func (m *Match) Sessions() []*Session {
	return m.sessions
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.cfg.Mode
}

// GameID returns the mode being played.
func (m *Match) GameID() string {
	return m.cfg.GameID
}

// Outcome returns the last finished run's outcome.
func (m *Match) Outcome() Outcome {
	return m.outcome
}

// Result returns the last leaderboard result.
func (m *Match) Result() leaderboard.Result {
	return m.result
}

// Pending returns the submission awaiting a result, if any.
func (m *Match) Pending() (Submission, bool) {
	if m.pending == nil {
		return Submission{}, false
	}
	return *m.pending, true
}

// TimeLeft returns the race frames remaining, or 0 without a limit.
func (m *Match) TimeLeft() float64 {
	if m.cfg.Mode != MatchModeRace || m.cfg.RaceLimit <= 0 {
		return 0
	}
	return max(0, m.cfg.RaceLimit-m.elapsed)
}
