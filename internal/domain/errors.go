package domain

import "errors"

var (
	// ErrInvalidArgument signals a missing or contradictory required filter combination.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound signals a missing resource (e.g. a party logo asset).
	ErrNotFound = errors.New("not found")
	// ErrSourceUnavailable signals that the document source could not be reached.
	ErrSourceUnavailable = errors.New("source unavailable")
)
