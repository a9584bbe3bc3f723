package services

import "errors"

// Sentinel errors controllers translate into HTTP statuses.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already exists")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("record not found")
)
