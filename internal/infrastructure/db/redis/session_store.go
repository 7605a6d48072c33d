package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pmorales/portfolio/internal/core/domain"
	"github.com/pmorales/portfolio/internal/pkg/securetoken"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps opaque session tokens in Redis with a sliding
// inactivity TTL. Key format: session:<token> → user id.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// ttl is the inactivity window after which an untouched session expires.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, userID string) (string, error) {
	token, err := securetoken.New()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	return token, nil
}

// Resolve looks the token up and, on a hit, pushes the expiry out by the
// full inactivity window. Expired and unknown tokens are indistinguishable.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetEx(ctx, s.key(token), s.ttl).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("session resolve: %w", err)
	}
	return userID, nil
}

// Destroy removes the token. Destroying a token that is already gone is
// not an error.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}
