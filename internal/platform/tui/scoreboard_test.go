package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
)

// fixedBackend serves the same records for every table.
type fixedBackend struct {
	records []leaderboard.Record
}

func (b fixedBackend) Submit(context.Context, leaderboard.Record) error { return nil }

func (b fixedBackend) Top(_ context.Context, table string, n int) ([]leaderboard.Record, error) {
	out := make([]leaderboard.Record, 0, len(b.records))
	for _, r := range b.records {
		r.Table = table
		out = append(out, r)
	}
	return out[:min(n, len(out))], nil
}

func (b fixedBackend) Rank(context.Context, string, int) (int, error) { return 1, nil }

func loadScoreboard(t *testing.T, m ScoreboardModel, cmd tea.Cmd) ScoreboardModel {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	next, _ := m.Update(cmd())
	return next.(ScoreboardModel)
}

func TestScoreboardOffline(t *testing.T) {
	m := NewScoreboardModel(leaderboard.NewClient(nil, nil), "tester", 100, 30)
	if !strings.Contains(m.View(), "Loading...") {
		t.Error("scoreboard should show loading before the first reply")
	}

	m = loadScoreboard(t, m, m.Init())
	if !strings.Contains(m.View(), "Leaderboard offline.") {
		t.Errorf("offline client should be reported:\n%s", m.View())
	}
}

func TestScoreboardMarksPlayer(t *testing.T) {
	board := leaderboard.NewClient(fixedBackend{records: []leaderboard.Record{
		{Name: "ace", Score: 90},
		{Name: "Tester", Score: 40},
		{Name: "tester", Score: 10},
	}}, nil)
	m := NewScoreboardModel(board, "tester", 100, 30)
	m = loadScoreboard(t, m, m.Init())

	rank, score, ok := m.playerBest()
	if !ok || rank != 2 || score != 40 {
		t.Errorf("playerBest() = %d, %d, %v; want 2, 40, true", rank, score, ok)
	}
	view := m.View()
	if !strings.Contains(view, "*#2") {
		t.Errorf("player row not marked:\n%s", view)
	}
	if !strings.Contains(view, "3 entries") {
		t.Errorf("footer missing entry count:\n%s", view)
	}
}

func TestScoreboardDropsStaleTable(t *testing.T) {
	board := leaderboard.NewClient(fixedBackend{records: []leaderboard.Record{{Name: "ace", Score: 1}}}, nil)
	m := NewScoreboardModel(board, "", 100, 30)
	first := m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if cmd == nil {
		t.Fatal("switching mode should fetch")
	}

	// The reply for the first mode arrives after the switch.
	next, _ = m.Update(first())
	m = next.(ScoreboardModel)
	if !m.loading {
		t.Error("stale reply should not finish loading")
	}

	m = loadScoreboard(t, m, cmd)
	if m.loading || len(m.result.Records) != 1 {
		t.Errorf("loading = %v, records = %d", m.loading, len(m.result.Records))
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(leaderboard.NewClient(nil, nil), "", 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}
