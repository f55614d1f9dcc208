package usecase

import "errors"

// ErrPostNotFound is returned when a post cannot be found by ID.
var ErrPostNotFound = errors.New("post not found")
