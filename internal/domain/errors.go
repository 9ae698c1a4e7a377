package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by the application layer. Transports map them to
// status codes with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrTooManyRequests    = errors.New("too many requests")
)

var (
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)
	ErrEmailTaken   = fmt.Errorf("email %w", ErrConflict)
)

// Invalid wraps ErrValidation with a field level message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
