package multiplayer

import (
	"sync"

	"github.com/vovakirdan/erika-arcade/internal/registry"
)

// Session is one player's seat in a match: a name and a core instance.
type Session struct {
	Player PlayerID
	Name   string
	Game   registry.Game

	Over  bool
	Score int
}

// SessionID uniquely identifies a connected surface (an SSH or WebSocket connection).
type SessionID string

// SessionHandle is the transport-neutral view of a connection.
type SessionHandle interface {
	// ID returns the unique session identifier.
	ID() SessionID

	// Done returns a channel that closes when the session ends.
	Done() <-chan struct{}
}

// SessionRegistry tracks active connections. Each one runs its own Match.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[SessionID]SessionHandle
}

// NewSessionRegistry creates a new session registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[SessionID]SessionHandle),
	}
}

// Register adds a session and removes it again once it is done.
func (r *SessionRegistry) Register(session SessionHandle) {
	r.mu.Lock()
	r.sessions[session.ID()] = session
	r.mu.Unlock()

	go func() {
		<-session.Done()
		r.Unregister(session.ID())
	}()
}

// Unregister removes a session from the registry.
func (r *SessionRegistry) Unregister(id SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *SessionRegistry) Get(id SessionID) (SessionHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
