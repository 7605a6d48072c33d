package domain

import "errors"

var (
	// ErrInvalidCredentials covers every login failure: unknown username,
	// wrong password, empty input. Callers must not distinguish the cause.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists   = errors.New("username already taken")
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned for missing, expired and destroyed
	// session tokens alike.
	ErrSessionNotFound = errors.New("session not found")

	ErrCommentNotAllowed = errors.New("authentication required to comment")
	ErrEmptyComment      = errors.New("comment body cannot be empty")
)
