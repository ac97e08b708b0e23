package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/multiplayer"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Mode   multiplayer.MatchMode
}

// MenuItems lists every registered mode in picker order, solo entries
// first, then the modes that can race.
func MenuItems() []MenuItem {
	games := registry.List()

	items := make([]MenuItem, 0, len(games)*2)
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Mode: multiplayer.MatchModeSolo})
	}
	for _, g := range games {
		if g.Race {
			items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Mode: multiplayer.MatchModeRace})
		}
	}
	return items
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	svc            Services
	items          []MenuItem
	cursor         int
	width          int
	height         int
	name           string
	nameInput      textinput.Model
	editingName    bool
	rememberName   bool // persist name edits to the store
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Name edits are kept in memory
// unless rememberName is set.
func NewMenuModel(svc Services, name string, rememberName bool, width, height int) MenuModel {
	svc = svc.WithDefaults()

	ti := textinput.New()
	ti.Placeholder = leaderboard.DefaultName
	ti.CharLimit = leaderboard.MaxNameLen
	ti.Width = leaderboard.MaxNameLen + 1
	ti.Prompt = "Name: "

	if name == "" {
		name = leaderboard.DefaultName
	}

	return MenuModel{
		svc:          svc,
		items:        MenuItems(),
		width:        width,
		height:       height,
		name:         name,
		nameInput:    ti,
		rememberName: rememberName,
		keyMapper:    NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editingName {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.editingName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true

	case MenuActionName:
		m.editingName = true
		m.nameInput.SetValue(m.name)
		m.nameInput.CursorEnd()
		return m, m.nameInput.Focus()
	}

	return m, nil
}

// handleNameKey edits the player name. Enter saves, Esc cancels.
func (m MenuModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.name = leaderboard.SanitizeName(m.nameInput.Value())
		m.editingName = false
		m.nameInput.Blur()
		if m.rememberName && m.svc.Store != nil {
			if err := m.svc.Store.SetPlayerName(m.name); err != nil {
				m.svc.Logger.Warn("cannot save player name", "err", err)
			}
		}
		return m, nil

	case "esc":
		m.editingName = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("E R I K A   A R C A D E"), m.width))
	b.WriteString("\n\n")

	if m.editingName {
		b.WriteString(centerText(m.nameInput.View(), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render("Enter: save  |  Esc: cancel"), m.width))
		b.WriteString("\n\n")
	} else {
		b.WriteString(centerText(menuDimStyle.Render("Playing as "+m.name), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		if i > 0 && item.Mode != m.items[i-1].Mode {
			b.WriteString("\n")
		}
		label := item.Title
		if item.Mode == multiplayer.MatchModeRace {
			label = fmt.Sprintf("%s (2P race)", item.Title)
		}

		line := "  " + label + "  "
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + label + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  N: Name  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Name returns the current player name.
func (m MenuModel) Name() string {
	return m.name
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
