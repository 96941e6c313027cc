package repositories

import "errors"

var (
	// ErrNotFound covers unknown posts and users.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized covers invalid or expired session tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDuplicate covers unique-index violations on signup.
	ErrDuplicate = errors.New("already exists")
)
