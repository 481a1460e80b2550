// Package sessions keeps the server-side session table: opaque tokens
// handed to clients in a cookie, mapped to user IDs in memory.
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	userID    string
	expiresAt time.Time
}

// Store tracks active sessions. An expired or unknown token resolves the
// same way as no token at all: not logged in.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]session),
		ttl:      ttl,
	}
}

// Create opens a session for a user and returns the opaque token.
// Expired sessions are swept on every create so abandoned ones do not
// pile up.
func (s *Store) Create(userID string) string {
	token := uuid.New().String()
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for t, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, t)
		}
	}
	s.sessions[token] = session{
		userID:    userID,
		expiresAt: now.Add(s.ttl),
	}
	return token
}

// Resolve returns the user ID behind a token. Expired sessions are
// removed on sight.
func (s *Store) Resolve(token string) (string, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expiresAt) {
		s.Destroy(token)
		return "", false
	}
	return sess.userID, true
}

// Destroy ends a session. Unknown tokens are ignored.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Count returns the number of sessions, including any not yet swept.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
