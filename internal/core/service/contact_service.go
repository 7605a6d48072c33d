package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pmorales/portfolio/internal/core/domain"
	"github.com/pmorales/portfolio/internal/core/ports"
)

// ContactService persists contact-form submissions.
type ContactService struct {
	contacts ports.ContactRepository
}

func NewContactService(contacts ports.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message string) error {
	return s.contacts.Create(ctx, &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}
