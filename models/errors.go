package models

import "errors"

// Error kinds surfaced at the HTTP boundary. Lower layers wrap them with %w.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrPersistence  = errors.New("persistence failure")
	ErrRelay        = errors.New("mail relay failure")
)
