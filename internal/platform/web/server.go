// Package web serves the arcade to browsers. Each WebSocket connection runs
// its own match; the page sends key down and up events and receives
// rendered frames.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/input"
	"github.com/vovakirdan/erika-arcade/internal/multiplayer"
	"github.com/vovakirdan/erika-arcade/internal/platform/tui"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

//go:embed index.html
var indexHTML []byte

// Config holds configuration for the web bridge.
type Config struct {
	// Address is the host:port to listen on.
	Address string

	// TickRate is the frame rate per connection.
	TickRate int
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  "localhost:8080",
		TickRate: 60,
	}
}

// Server is the HTTP and WebSocket bridge.
type Server struct {
	cfg      Config
	svc      tui.Services
	sessions *multiplayer.SessionRegistry
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewServer creates a bridge sharing svc across connections.
func NewServer(cfg Config, svc tui.Services) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	svc = svc.WithDefaults()
	return &Server{
		cfg:      cfg,
		svc:      svc,
		sessions: multiplayer.NewSessionRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
		},
		logger: svc.Logger,
	}
}

// Handler returns the HTTP routes: the page at / and the socket at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleSocket)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleSocket validates the query, upgrades and runs the connection until
// the browser leaves.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	gameID := q.Get("game")
	if !registry.Exists(gameID) {
		http.Error(w, fmt.Sprintf("unknown game %q", gameID), http.StatusBadRequest)
		return
	}
	mode := multiplayer.MatchModeSolo
	if q.Get("race") != "" && registry.SupportsRace(gameID) {
		mode = multiplayer.MatchModeRace
	}

	rt := core.DefaultConfig()
	rt.TickRate = s.cfg.TickRate
	cols, _ := strconv.Atoi(q.Get("cols"))
	rows, _ := strconv.Atoi(q.Get("rows"))
	if w, h, ok := clampSize(cols, rows); ok {
		rt.ScreenW, rt.ScreenH = w, h
	}

	router := input.NewRouter(input.KeymapFor(gameID, mode == multiplayer.MatchModeRace))
	router.SetKeyUps(true)

	match, err := tui.NewMatch(s.svc, tui.GameOptions{
		GameID:  gameID,
		Mode:    mode,
		Name:    q.Get("name"),
		Runtime: rt,
	}, router)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	match.Resize(rt.ScreenW, rt.ScreenH)

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	c := &Connection{
		id:      multiplayer.SessionID(fmt.Sprintf("web-%s-%d", r.RemoteAddr, time.Now().UnixNano())),
		ws:      ws,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		logger:  s.logger,
		svc:     s.svc,
		router:  router,
		match:   match,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		clock:   core.NewClock(),
		resize:  make(chan [2]int, 1),
		results: make(chan submitted, 1),
	}
	if s.svc.Store != nil {
		if best, err := s.svc.Store.HighScore(gameID); err == nil {
			c.best = best
		}
	}

	s.sessions.Register(c)
	s.logger.Info("session started", "session", c.id, "game", gameID, "mode", mode, "active", s.sessions.Count())

	ctx, cancel := context.WithCancel(r.Context())
	go c.writePump(ctx)
	go c.readPump(cancel)
	c.run(ctx, cancel, s.cfg.TickRate)

	close(c.done)
	s.logger.Info("session ended", "session", c.id)
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web bridge", "address", s.cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "sessions", s.sessions.Count())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Sessions returns the number of connected browsers.
func (s *Server) Sessions() int {
	return s.sessions.Count()
}
