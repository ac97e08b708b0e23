package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/erika-arcade/internal/core"
	_ "github.com/vovakirdan/erika-arcade/internal/games/block"
	_ "github.com/vovakirdan/erika-arcade/internal/games/runner"
	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/multiplayer"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

// stubGame ends the run with a score of 5 on the first primary action.
type stubGame struct {
	score int
	over  bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.score, g.over = 0, false
}

func (g *stubGame) Resize(core.Viewport) {}
func (g *stubGame) Render(*core.Screen)  {}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *stubGame) Step(in core.InputFrame, _ float64) core.StepResult {
	if !g.over && in.Has(core.ActionPrimary) {
		g.score, g.over = 5, true
	}
	return core.StepResult{State: g.State()}
}

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

type ticker struct {
	now time.Time
}

func (t *ticker) next() TickMsg {
	t.now = t.now.Add(core.FrameDuration)
	return TickMsg(t.now)
}

func newStubModel(t *testing.T, standalone bool) GameModel {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 1
	m, err := NewGameModel(Services{}, GameOptions{
		GameID:     "stub",
		Runtime:    rt,
		Name:       "tester",
		Standalone: standalone,
	})
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func press(t *testing.T, m GameModel, key string) GameModel {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ = update(t, m, msg)
	return m
}

func tick(t *testing.T, m GameModel, clk *ticker, n int) GameModel {
	t.Helper()
	for range n {
		m, _ = update(t, m, clk.next())
	}
	return m
}

func TestGameModelStartsInMenu(t *testing.T) {
	m := newStubModel(t, false)
	if got := m.Match().Phase(); got != multiplayer.PhaseMenu {
		t.Fatalf("phase = %v, want Menu", got)
	}
	if !strings.Contains(m.View(), "ENTER / SPACE") {
		t.Error("menu overlay missing start hint")
	}
}

func TestGameModelRunToResults(t *testing.T) {
	m := newStubModel(t, false)
	clk := &ticker{now: time.Unix(0, 0)}

	m = press(t, m, "enter")
	m = tick(t, m, clk, 1)
	if got := m.Match().Phase(); got != multiplayer.PhaseCountdown {
		t.Fatalf("phase = %v, want Countdown", got)
	}
	m = tick(t, m, clk, 180)
	if got := m.Match().Phase(); got != multiplayer.PhaseRunning {
		t.Fatalf("phase = %v, want Running", got)
	}

	m = press(t, m, " ")
	m = tick(t, m, clk, 1)
	if got := m.Match().Phase(); got != multiplayer.PhaseOver {
		t.Fatalf("phase = %v, want Over", got)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("over overlay missing")
	}

	m = tick(t, m, clk, 45)
	sub, ok := m.Match().Pending()
	if !ok {
		t.Fatalf("no pending submission in phase %v", m.Match().Phase())
	}
	if sub.Record.Name != "tester" || sub.Record.Score != 5 {
		t.Errorf("submission = %+v", sub.Record)
	}

	// A stale reply is ignored.
	m, _ = update(t, m, submittedMsg{gen: sub.Generation + 1})
	if got := m.Match().Phase(); got != multiplayer.PhaseSubmitting {
		t.Fatalf("stale reply moved phase to %v", got)
	}

	msg := submitCmd(leaderboard.NewClient(nil, nil), sub)()
	m, _ = update(t, m, msg)
	if got := m.Match().Phase(); got != multiplayer.PhaseResults {
		t.Fatalf("phase = %v, want Results", got)
	}
	if !strings.Contains(m.View(), "Leaderboard offline") {
		t.Error("results overlay should report the offline leaderboard")
	}
}

func TestGameModelBackFromMenu(t *testing.T) {
	tests := []struct {
		name       string
		standalone bool
		wantQuit   bool
	}{
		{"picker session", false, false},
		{"standalone", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newStubModel(t, tt.standalone)
			clk := &ticker{now: time.Unix(0, 0)}
			m = press(t, m, "b")
			m = tick(t, m, clk, 1)

			if !m.BackToMenu() {
				t.Error("BackToMenu() = false")
			}
			if m.IsQuitting() != tt.wantQuit {
				t.Errorf("IsQuitting() = %v, want %v", m.IsQuitting(), tt.wantQuit)
			}
		})
	}
}

func TestGameModelQuitKey(t *testing.T) {
	m := newStubModel(t, false)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestGameModelPause(t *testing.T) {
	m := newStubModel(t, false)
	clk := &ticker{now: time.Unix(0, 0)}
	m = press(t, m, "enter")
	m = tick(t, m, clk, 181)

	m = press(t, m, "p")
	m = tick(t, m, clk, 1)
	if got := m.Match().Phase(); got != multiplayer.PhasePaused {
		t.Fatalf("phase = %v, want Paused", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestMenuItemsOrder(t *testing.T) {
	items := MenuItems()
	if len(items) == 0 || items[0].GameID != "runner" {
		t.Fatalf("first item = %+v, want runner", items)
	}

	soloBlock, raceBlock, raceRunner := false, false, false
	for _, it := range items {
		switch {
		case it.GameID == "block" && it.Mode == multiplayer.MatchModeSolo:
			soloBlock = true
		case it.GameID == "block":
			raceBlock = true
		case it.GameID == "runner" && it.Mode == multiplayer.MatchModeRace:
			raceRunner = true
		}
	}
	if !soloBlock || raceBlock || !raceRunner {
		t.Errorf("solo block %v, race block %v, race runner %v", soloBlock, raceBlock, raceRunner)
	}
}

func TestAppPickerStartsGame(t *testing.T) {
	rt := core.DefaultConfig()
	rt.Seed = 3
	var m tea.Model = NewAppModel(Services{}, AppOptions{Runtime: rt, Name: "tester"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app := m.(AppModel)
	if app.active != appGame {
		t.Fatalf("active = %v, want game", app.active)
	}
	if got := app.game.Match().GameID(); got != "runner" {
		t.Errorf("game = %q, want runner", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	m, _ = m.Update(TickMsg(time.Unix(0, 0)))
	if app := m.(AppModel); app.active != appPicker {
		t.Errorf("active = %v, want picker after backing out", app.active)
	}
}

func TestDrawPanelFitsSmallScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	drawPanel(s, []overlayLine{plain("a very long line"), plain("second"), plain("third")})
	if s.Get(0, 0) != '┌' {
		t.Errorf("corner = %q", s.Get(0, 0))
	}
}
