package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store holds live interview sessions in memory with time-based expiry.
// Nothing survives a process restart; a session's value is bounded to one
// interview run.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	timeout  time.Duration
	logger   *zap.Logger
}

func NewStore(timeout time.Duration, logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		logger:   logger,
	}
}

// Create sweeps expired sessions, then registers a fresh session and returns it.
func (st *Store) Create(technology, position string) *Session {
	st.Sweep()

	now := time.Now()
	s := &Session{
		ID:           uuid.New().String(),
		Technology:   technology,
		Position:     position,
		IsActive:     true,
		CreatedAt:    now,
		lastActivity: now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Info("Session created",
		zap.String("session_id", s.ID),
		zap.String("technology", technology),
		zap.String("position", position))

	return s
}

// Get returns the session if present and refreshes its activity timestamp.
func (st *Store) Get(sessionID string) (*Session, bool) {
	st.mu.RLock()
	s, exists := st.sessions[sessionID]
	st.mu.RUnlock()

	if !exists {
		return nil, false
	}
	s.Touch()
	return s, true
}

// Delete removes a session and reports whether it existed.
func (st *Store) Delete(sessionID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.sessions[sessionID]; !exists {
		return false
	}
	delete(st.sessions, sessionID)
	return true
}

// Sweep removes sessions idle beyond the timeout and returns how many were removed.
// Runs on every Create and from the background sweeper job.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.LastActive()) > st.timeout {
			delete(st.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		st.logger.Info("Swept expired sessions", zap.Int("removed", removed))
	}
	return removed
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
