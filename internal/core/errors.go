package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when an operation needs an identity and
	// none was resolved.
	ErrUnauthenticated = errors.New("login required")
	// ErrUserNotFound is returned when the caller has no user document.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError carries the message shown to the user for rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func userNotFound(uid string, err error) error {
	return fmt.Errorf("%w: user with ID '%s': %w", ErrUserNotFound, uid, err)
}
