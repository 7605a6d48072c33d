package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pmorales/portfolio/internal/core/domain"
	"github.com/pmorales/portfolio/internal/core/ports"
)

// CommentService implements the comment board policy: reads are public,
// writes require an authenticated author.
type CommentService struct {
	comments ports.CommentRepository
}

func NewCommentService(comments ports.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) List(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.ListNewestFirst(ctx)
}

func (s *CommentService) Post(ctx context.Context, author *domain.User, body string) (*domain.Comment, error) {
	// The router already gates writes behind the session middleware; this
	// check is the policy's last line in case a new route forgets the gate.
	if author == nil || author.ID == "" {
		return nil, domain.ErrCommentNotAllowed
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.ErrEmptyComment
	}

	comment := &domain.Comment{
		ID:         uuid.NewString(),
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}
	return s.comments.Create(ctx, comment)
}
