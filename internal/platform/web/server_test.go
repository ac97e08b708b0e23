package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/platform/tui"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

type idleGame struct{}

func (idleGame) ID() string                                    { return "idle" }
func (idleGame) Title() string                                 { return "Idle" }
func (idleGame) Reset(core.RuntimeConfig)                      {}
func (idleGame) Resize(core.Viewport)                          {}
func (idleGame) Render(*core.Screen)                           {}
func (idleGame) State() core.GameState                         { return core.GameState{} }
func (idleGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }

func init() {
	registry.Register("idle", func() registry.Game { return idleGame{} })
}

func TestRenderHTML(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "<a&")
	s.SetCell(3, 0, 'x', core.ColorRed)
	s.SetCell(4, 0, 'y', core.ColorRed)
	s.SetCell(0, 1, 'z', core.ColorGray)

	got := RenderHTML(s)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if want := `&lt;a&amp;<span class="c1">xy</span> `; lines[0] != want {
		t.Errorf("row 0 = %q, want %q", lines[0], want)
	}
	if want := `<span class="c16">z</span>     `; lines[1] != want {
		t.Errorf("row 1 = %q, want %q", lines[1], want)
	}
}

func TestRouterKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ArrowUp", "up"},
		{"ArrowLeft", "left"},
		{"Enter", "enter"},
		{"Escape", "esc"},
		{" ", " "},
		{"W", "w"},
		{"a", "a"},
		{"Shift", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := RouterKey(tt.in); got != tt.want {
			t.Errorf("RouterKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewServer(Config{TickRate: 60}, tui.Services{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?" + query
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readUntil(t *testing.T, ws *websocket.Conn, msgType string) serverMessage {
	t.Helper()
	_ = ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %q: %v", msgType, err)
		}
		var msg serverMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if msg.Type == msgType {
			return msg
		}
	}
}

func TestIndexPage(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/missing")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSocketRejectsUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/ws?game=nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSocketStreamsMenuFrame(t *testing.T) {
	ts := newTestServer(t)
	ws := dial(t, ts, "game=idle&cols=60&rows=16&name=web")

	msg := readUntil(t, ws, "frame")
	if !strings.Contains(msg.HTML, "ENTER / SPACE") {
		t.Errorf("first frame missing the start hint:\n%s", msg.HTML)
	}
	if got := strings.Count(msg.HTML, "\n") + 1; got != 16 {
		t.Errorf("frame has %d rows, want 16", got)
	}
}

func TestSocketBackExits(t *testing.T) {
	ts := newTestServer(t)
	ws := dial(t, ts, "game=idle")

	readUntil(t, ws, "frame")
	if err := ws.WriteJSON(clientMessage{Type: "down", Key: "b"}); err != nil {
		t.Fatal(err)
	}
	readUntil(t, ws, "exit")
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		w, h       int
		ok         bool
	}{
		{60, 16, 60, 16, true},
		{100000000, 100000000, MaxCols, MaxRows, true},
		{0, 16, 0, 0, false},
		{60, -1, 0, 0, false},
	}

	for _, tt := range tests {
		w, h, ok := clampSize(tt.cols, tt.rows)
		if w != tt.w || h != tt.h || ok != tt.ok {
			t.Errorf("clampSize(%d, %d) = %d, %d, %v; want %d, %d, %v",
				tt.cols, tt.rows, w, h, ok, tt.w, tt.h, tt.ok)
		}
	}
}

func TestSocketClampsHugeGrid(t *testing.T) {
	ts := newTestServer(t)
	ws := dial(t, ts, "game=idle&cols=100000000&rows=100000000")

	msg := readUntil(t, ws, "frame")
	if got := strings.Count(msg.HTML, "\n") + 1; got != MaxRows {
		t.Errorf("frame has %d rows, want %d", got, MaxRows)
	}
}
