package ports

import (
	"context"

	"github.com/pmorales/portfolio/internal/core/domain"
)

// CommentRepository defines the interface for comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListNewestFirst(ctx context.Context) ([]domain.Comment, error)
}
