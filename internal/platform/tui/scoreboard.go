package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = menuDimStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Refresh, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next mode"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev mode"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel browses the leaderboard table of each mode. Tables are
// fetched through the leaderboard client, so a remote backend never blocks
// the update loop.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	player string

	board   *leaderboard.Client
	result  leaderboard.Result
	loading bool

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// scoresLoadedMsg delivers a leaderboard table.
type scoresLoadedMsg struct {
	result leaderboard.Result
}

// NewScoreboardModel creates a scoreboard. Rows whose name equals player
// are marked.
func NewScoreboardModel(board *leaderboard.Client, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		player: player,
		board:  board,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.loading = len(m.games) > 0
	m.table = m.newTable()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.cursor], true
}

// newTable sizes the columns to the space left beside the sidebar.
func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	dateWidth := 12
	if avail > 60 {
		dateWidth = min(avail-40, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: leaderboard.MaxNameLen},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = menuSelectedStyle
	t.SetStyles(s)
	return t
}

// fetch loads the selected mode's table off the update loop.
func (m *ScoreboardModel) fetch() tea.Cmd {
	g, ok := m.current()
	if !ok {
		return nil
	}
	m.loading = true
	board := m.board
	return func() tea.Msg {
		return scoresLoadedMsg{result: board.Top(context.Background(), g.ID, leaderboard.FullLimit)}
	}
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, 0, len(m.result.Records))
	for i, r := range m.result.Records {
		rank := "#" + strconv.Itoa(i+1)
		if m.isPlayer(r) {
			rank = "*" + rank
		}
		date := ""
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("Jan 02 15:04")
		}
		rows = append(rows, table.Row{rank, r.Name, strconv.Itoa(r.Score), date})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) isPlayer(r leaderboard.Record) bool {
	return m.player != "" && strings.EqualFold(r.Name, m.player)
}

// playerBest returns the player's highest listed entry, 1-based.
func (m ScoreboardModel) playerBest() (rank, score int, ok bool) {
	for i, r := range m.result.Records {
		if m.isPlayer(r) {
			return i + 1, r.Score, true
		}
	}
	return 0, 0, false
}

// Init starts loading the first table.
func (m ScoreboardModel) Init() tea.Cmd {
	cmd := m.fetch()
	return cmd
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.move(1)
		case key.Matches(msg, m.keys.Prev):
			return m.move(-1)
		case key.Matches(msg, m.keys.Refresh):
			cmd := m.fetch()
			return m, cmd
		}

	case scoresLoadedMsg:
		// A late reply for a mode that is no longer selected is dropped.
		if g, ok := m.current(); !ok || msg.result.Table != g.ID {
			return m, nil
		}
		m.loading = false
		m.result = msg.result
		m.fillRows()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillRows()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) move(delta int) (tea.Model, tea.Cmd) {
	if len(m.games) == 0 {
		return m, nil
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.result = leaderboard.Result{}
	m.table.SetRows(nil)
	cmd := m.fetch()
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "LEADERBOARD"
	if g, ok := m.current(); ok {
		title += "  " + g.Title
	}

	var b strings.Builder
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.tableContent())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(body, m.width))
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.footer()))
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Modes\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, g := range m.games {
		line := "  " + truncate(g.Title, sidebarWidth-6)
		if i == m.cursor {
			line = menuTitleStyle.Render("> " + truncate(g.Title, sidebarWidth-6))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return panelStyle.Width(sidebarWidth).Render(sb.String())
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 10)
		if i == m.cursor {
			tabs[i] = menuSelectedStyle.Bold(true).Padding(0, 1).Render(name)
		} else {
			tabs[i] = menuDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if g, ok := m.current(); ok && lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", g.Title)
	}
	return line
}

func (m ScoreboardModel) tableContent() string {
	switch {
	case m.loading:
		return emptyStyle.Render("Loading...")
	case !m.result.Ok():
		return emptyStyle.Render("Leaderboard offline.")
	case len(m.result.Records) == 0:
		return emptyStyle.Render("No scores yet.\nFinish a run to claim the top spot!")
	}
	return m.table.View()
}

func (m ScoreboardModel) footer() string {
	if m.loading || !m.result.Ok() {
		return ""
	}
	n := len(m.result.Records)
	if rank, score, ok := m.playerBest(); ok {
		return fmt.Sprintf("%d entries   * %s: #%d with %d", n, m.player, rank, score)
	}
	return fmt.Sprintf("%d entries", n)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
