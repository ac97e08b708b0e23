package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/erika-arcade/internal/assets"
	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/input"
	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/multiplayer"
	"github.com/vovakirdan/erika-arcade/internal/registry"
	"github.com/vovakirdan/erika-arcade/internal/storage"
)

// Services are the collaborators shared by every model of a surface.
// Store and Sprites may be nil.
type Services struct {
	Store   *storage.Store
	Board   *leaderboard.Client
	Sprites *assets.Catalog
	Logger  *log.Logger
}

// WithDefaults fills a missing logger and an offline leaderboard client.
func (s Services) WithDefaults() Services {
	if s.Logger == nil {
		s.Logger = log.Default()
	}
	if s.Board == nil {
		s.Board = leaderboard.NewClient(nil, s.Logger)
	}
	return s
}

// GameOptions selects what a GameModel plays.
type GameOptions struct {
	GameID  string
	Mode    multiplayer.MatchMode
	Name    string
	Runtime core.RuntimeConfig

	// Standalone quits the program when the player backs out of the
	// mode menu instead of handing control back to a picker.
	Standalone bool
}

// NewMatch builds a match wired to the surface services. The browser
// bridge uses it too, with a router that reports key releases.
func NewMatch(svc Services, opts GameOptions, router *input.Router) (*multiplayer.Match, error) {
	svc = svc.WithDefaults()

	cfg := multiplayer.DefaultConfig(opts.GameID, opts.Mode)
	cfg.Runtime = opts.Runtime
	if cfg.Runtime.Seed == 0 {
		cfg.Runtime.Seed = time.Now().UnixNano()
	}
	if svc.Sprites != nil {
		cfg.Runtime.Sprites = svc.Sprites
	}
	if opts.Name != "" {
		cfg.Names[0] = leaderboard.SanitizeName(opts.Name)
	}

	match, err := multiplayer.NewMatch(cfg, registry.Create, router)
	if err != nil {
		return nil, err
	}
	match.SetLogger(svc.Logger)
	if svc.Store != nil {
		match.SetScoreSaver(svc.Store)
	}
	return match, nil
}

// submittedMsg carries a leaderboard result back into the update loop.
type submittedMsg struct {
	gen    uint64
	result leaderboard.Result
}

// submitCmd runs the leaderboard flow off the update loop.
func submitCmd(board *leaderboard.Client, sub multiplayer.Submission) tea.Cmd {
	return func() tea.Msg {
		res := board.SubmitAndFetch(context.Background(), sub.Record)
		return submittedMsg{gen: sub.Generation, result: res}
	}
}

// GameModel is the Bubble Tea model for one match.
type GameModel struct {
	svc       Services
	opts      GameOptions
	match     *multiplayer.Match
	router    *input.Router
	clock     *core.Clock
	screen    *core.Screen
	keyMapper *KeyMapper

	best       int
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model playing opts.GameID.
func NewGameModel(svc Services, opts GameOptions) (GameModel, error) {
	svc = svc.WithDefaults()
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}

	router := input.NewRouter(input.KeymapFor(opts.GameID, opts.Mode == multiplayer.MatchModeRace))
	match, err := NewMatch(svc, opts, router)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}
	if opts.Runtime.ScreenW > 0 && opts.Runtime.ScreenH > 0 {
		match.Resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	}

	m := GameModel{
		svc:       svc,
		opts:      opts,
		match:     match,
		router:    router,
		clock:     core.NewClock(),
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keyMapper: NewKeyMapper(),
	}
	m.refreshBest()
	return m, nil
}

func (m *GameModel) refreshBest() {
	if m.svc.Store == nil {
		return
	}
	best, err := m.svc.Store.HighScore(m.opts.GameID)
	if err != nil {
		m.svc.Logger.Warn("cannot read high score", "game", m.opts.GameID, "err", err)
		return
	}
	m.best = best
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.match.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case submittedMsg:
		if !m.match.Complete(msg.gen, msg.result) {
			m.svc.Logger.Debug("dropped stale leaderboard result", "game", m.opts.GameID, "gen", msg.gen)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	m.router.Press(m.keyMapper.RouterKey(msg))
	return m, nil
}

// handleTick advances the match by one frame and reacts to its events.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	cmds := []tea.Cmd{tickCmd(m.opts.Runtime.TickRate)}

	for _, ev := range m.match.Step(dt) {
		switch ev := ev.(type) {
		case multiplayer.SubmitRequestedEvent:
			cmds = append(cmds, submitCmd(m.svc.Board, ev.Submission))

		case multiplayer.MatchEndedEvent:
			if ev.Outcome.NewBest {
				m.best = ev.Outcome.Best
			}

		case multiplayer.ExitEvent:
			m.backToMenu = true
			if m.opts.Standalone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m, tea.Batch(cmds...)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.svc.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.Logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.GameID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.svc.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.svc.Logger.Info("screenshot saved", "path", path)
}

// draw renders the match and its overlay into the screen buffer.
func (m *GameModel) draw() {
	m.screen.Clear()
	m.match.Render(m.screen)
	DrawOverlay(m.screen, m.match, OverlayInfo{
		Best:    m.best,
		Loading: m.svc.Sprites != nil && !m.svc.Sprites.Ready(),
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Match exposes the running match.
func (m GameModel) Match() *multiplayer.Match {
	return m.match
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single mode until the player quits or backs out.
func Run(svc Services, opts GameOptions) error {
	opts.Standalone = true
	model, err := NewGameModel(svc, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
