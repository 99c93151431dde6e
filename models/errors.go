package models

import "errors"

// Error kinds the helper maps to HTTP codes (401/403/404/400 in order).
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
)

// AppError pairs an error kind with the localized message shown to the
// user. errors.Is against the kind still works through Unwrap.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }
func (e *AppError) Unwrap() error { return e.Kind }

func E(kind error, message string) error {
	return &AppError{Kind: kind, Message: message}
}
