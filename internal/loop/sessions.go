package loop

import (
	"sync"
	"time"
)

// Hub tracks the live sessions of a multi-session server and announces
// shutdowns to them. Every session plays its own run; the hub shares nothing
// but the roster.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int]*Session
	nextID   int
}

// Session is one registered connection.
type Session struct {
	ID       int
	Username string

	shutdown chan struct{}
	once     sync.Once
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[int]*Session),
		nextID:   1,
	}
}

// Register adds a session for username and returns its handle.
func (h *Hub) Register(username string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := &Session{
		ID:       h.nextID,
		Username: username,
		shutdown: make(chan struct{}),
	}
	h.nextID++
	h.sessions[s.ID] = s
	return s
}

// Unregister removes a session. Unknown IDs are ignored.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown notifies every session and waits for them to disconnect, or
// until timeout. The caller should stop accepting connections first.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.RLock()
	for _, s := range h.sessions {
		s.notify()
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Count() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}

func (s *Session) notify() {
	s.once.Do(func() { close(s.shutdown) })
}

// ShuttingDown reports whether the server has announced a shutdown.
func (s *Session) ShuttingDown() bool {
	select {
	case <-s.shutdown:
		return true
	default:
		return false
	}
}
