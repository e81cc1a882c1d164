package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidInput     = errors.New("invalid input")
)
