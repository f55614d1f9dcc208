package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID,
	// or exists but is hidden from plain lookups because it is still PENDING.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email
	// address that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
