package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested organization does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateID indicates two dataset records share an id.
	ErrDuplicateID = errors.New("duplicate organization id")

	// ErrUnsupportedFormat indicates an unknown dataset format.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrDatasetUnavailable indicates the dataset could not be read.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)
