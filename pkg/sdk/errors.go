package loksabha

import "github.com/kailas-cloud/loksabha/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidArgument   = domain.ErrInvalidArgument
	ErrNotFound          = domain.ErrNotFound
	ErrSourceUnavailable = domain.ErrSourceUnavailable
)
