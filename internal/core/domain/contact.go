package domain

import "time"

// ContactMessage is a contact-form submission. Write-only: nothing in the
// site reads these back, they are drained directly from the database.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
