package ports

import (
	"context"

	"github.com/pmorales/portfolio/internal/core/domain"
)

// ContactRepository persists contact-form submissions. There is no read
// path through the application.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
}
