package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

type appScreen int

const (
	appPicker appScreen = iota
	appGame
	appScores
)

// AppOptions configures an arcade session.
type AppOptions struct {
	Runtime core.RuntimeConfig
	Name    string

	// RememberName saves name edits to the store. Off for SSH sessions,
	// which share one store.
	RememberName bool
}

// AppModel manages the full arcade session flow: picker -> game -> picker,
// with the scoreboard one key away. Used by `arcade menu` and SSH sessions.
type AppModel struct {
	svc      Services
	opts     AppOptions
	active   appScreen
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewAppModel creates a session starting at the picker.
func NewAppModel(svc Services, opts AppOptions) AppModel {
	svc = svc.WithDefaults()
	return AppModel{
		svc:  svc,
		opts: opts,
		menu: NewMenuModel(svc, opts.Name, opts.RememberName, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.active {
	case appGame:
		return m.updateGame(msg)
	case appScores:
		return m.updateScores(msg)
	default:
		return m.updatePicker(msg)
	}
}

func (m AppModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.menu.openScoreboard = false
		m.scores = NewScoreboardModel(m.svc.Board, m.menu.Name(), m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.active = appScores
		return m, m.scores.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.menu.selected = nil
		game, err := NewGameModel(m.svc, GameOptions{
			GameID:  selected.GameID,
			Mode:    selected.Mode,
			Name:    m.menu.Name(),
			Runtime: m.opts.Runtime,
		})
		if err != nil {
			// Shouldn't happen since the picker only lists registered games
			m.svc.Logger.Error("cannot start game", "game", selected.GameID, "err", err)
			return m, nil
		}
		m.game = game
		m.active = appGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = GameModel{}
		m.active = appPicker
		next, _ := m.menu.Update(tea.WindowSizeMsg{Width: m.opts.Runtime.ScreenW, Height: m.opts.Runtime.ScreenH})
		if menu, ok := next.(MenuModel); ok {
			m.menu = menu
		}
		return m, nil
	}

	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.active = appPicker
		return m, nil
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case appGame:
		return m.game.View()
	case appScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the interactive arcade until the player quits.
func RunApp(svc Services, opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(svc, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
