package service

import "errors"

// Domain errors surfaced by the access layer. Anything else a caller sees is
// wrapped infrastructure failure.
var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProductNotFound    = errors.New("product not found")
)
