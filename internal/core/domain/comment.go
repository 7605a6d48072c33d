package domain

import "time"

// Comment is a single entry on the public comment board. Comments are
// immutable once created; AuthorName is denormalised at read time so the
// board renders without a second lookup.
type Comment struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
