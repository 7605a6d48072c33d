package ports

import (
	"context"

	"github.com/pmorales/portfolio/internal/core/domain"
)

type CommentService interface {
	// List returns every comment, newest first. Public: no identity needed.
	List(ctx context.Context) ([]domain.Comment, error)
	// Post creates a comment attributed to author. The author must be an
	// authenticated user; anonymous posts are rejected.
	Post(ctx context.Context, author *domain.User, body string) (*domain.Comment, error)
}
