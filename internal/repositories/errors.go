package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDuplicateKey is returned when a create violates a uniqueness rule,
	// e.g. a duplicate user email or a second inventory row for the same
	// (product, store) pair.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")
)
