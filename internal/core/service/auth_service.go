package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pmorales/portfolio/internal/core/domain"
	"github.com/pmorales/portfolio/internal/core/ports"
)

// AuthService implements registration, login and logout over a user
// repository, a password hasher and a session store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	hasher   ports.PasswordHasher

	// dummyHash is compared against when the username does not exist, so
	// the unknown-user path costs the same as a wrong-password path.
	dummyHash string
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, hasher ports.PasswordHasher) (*AuthService, error) {
	dummy, err := hasher.Hash("deliberately-not-a-real-password")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		dummyHash: dummy,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	// Registration auto-authenticates: the new user lands on the comment
	// board already logged in.
	token, err := s.sessions.Create(ctx, created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison anyway so response timing does not
			// reveal whether the username exists.
			s.hasher.Verify(password, s.dummyHash)
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}

func (s *AuthService) UserFromSession(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Session outlived its account; treat as no session.
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}
