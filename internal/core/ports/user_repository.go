package ports

import (
	"context"

	"github.com/pmorales/portfolio/internal/core/domain"
)

// UserRepository defines the interface for account persistence. Username
// uniqueness is enforced by the storage layer, not here: concurrent
// registrations of the same name race down to a single winner at the
// unique constraint.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
