package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that the email or phone is already taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNotFound indicates that a row is absent or not owned by the
	// requesting user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique-constraint violation
	ErrDuplicate = errors.New("duplicate entry")

	// ErrInvalidReference indicates a referenced contact that does not
	// exist or belongs to another user
	ErrInvalidReference = errors.New("invalid contact reference")
)
