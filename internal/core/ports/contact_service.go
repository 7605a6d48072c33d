package ports

import "context"

type ContactService interface {
	Submit(ctx context.Context, name, email, message string) error
}
