package ports

import (
	"context"

	"github.com/pmorales/portfolio/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and immediately establishes a session
	// for it (registration auto-authenticates).
	Register(ctx context.Context, username, password string) (*domain.User, string, error)
	// Login verifies credentials and returns a fresh session token.
	// Every failure mode surfaces as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	// Logout destroys the session behind token. Idempotent.
	Logout(ctx context.Context, token string) error
	// UserFromSession resolves a session token to its user.
	UserFromSession(ctx context.Context, token string) (*domain.User, error)
}
