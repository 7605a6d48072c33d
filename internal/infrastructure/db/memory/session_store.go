// Package memory holds in-process implementations of the storage ports,
// used in tests and in development runs without a Redis instance.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pmorales/portfolio/internal/core/domain"
	"github.com/pmorales/portfolio/internal/pkg/securetoken"
)

type sessionEntry struct {
	userID    string
	expiresAt time.Time
}

// SessionStore is a map-backed ports.SessionStore with the same sliding
// expiry semantics as the Redis implementation.
type SessionStore struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time

	sessions map[string]sessionEntry
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]sessionEntry),
	}
}

// SetClock overrides the store's notion of time. Tests only.
func (s *SessionStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *SessionStore) Create(_ context.Context, userID string) (string, error) {
	token, err := securetoken.New()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sessionEntry{userID: userID, expiresAt: s.now().Add(s.ttl)}
	return token, nil
}

func (s *SessionStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.sessions, token)
		return "", domain.ErrSessionNotFound
	}

	entry.expiresAt = s.now().Add(s.ttl)
	s.sessions[token] = entry
	return entry.userID, nil
}

func (s *SessionStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
