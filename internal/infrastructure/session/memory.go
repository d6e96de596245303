package session

import (
	"context"
	"sync"
	"time"

	"github.com/hauqxngo/NomNom/internal/ports/outbound"
)

// memorySession is a single in-memory session record
type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore implements the session repository in process memory. It is
// the development and test fallback when Redis is not configured.
type MemoryStore struct {
	sessions map[string]memorySession
	mu       sync.RWMutex
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates an in-memory session store with periodic cleanup
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]memorySession),
		stop:     make(chan struct{}),
	}

	go store.cleanupExpired()

	return store
}

// Save stores a session with the given TTL
func (s *MemoryStore) Save(_ context.Context, sessionID string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	s.sessions[sessionID] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()
	return nil
}

// Lookup resolves a session ID to a user ID. An unknown or expired session
// returns (0, false, nil).
func (s *MemoryStore) Lookup(_ context.Context, sessionID string) (uint, bool, error) {
	s.mu.RLock()
	sess, exists := s.sessions[sessionID]
	s.mu.RUnlock()

	if !exists {
		return 0, false, nil
	}

	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return 0, false, nil
	}

	return sess.userID, true, nil
}

// Delete removes a session. Deleting a missing session is a no-op.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

// cleanupExpired removes expired sessions periodically
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

var _ outbound.SessionRepository = (*MemoryStore)(nil)
