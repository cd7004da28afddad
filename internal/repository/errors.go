package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a document is not found
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateEmail is returned when trying to create a user with an existing email
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrDuplicateClaim is returned when the unique (user, deal) index rejects an insert
	ErrDuplicateClaim = errors.New("claim for this user and deal already exists")
)
