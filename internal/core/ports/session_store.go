package ports

import "context"

// SessionStore maps opaque tokens to authenticated user IDs.
//
// Resolve returns domain.ErrSessionNotFound for unknown, expired and
// destroyed tokens alike — callers cannot tell whether a session ever
// existed. Implementations must be safe for concurrent use and should
// treat a Resolve as activity, extending the inactivity window.
type SessionStore interface {
	Create(ctx context.Context, userID string) (token string, err error)
	Resolve(ctx context.Context, token string) (userID string, err error)
	Destroy(ctx context.Context, token string) error
}
