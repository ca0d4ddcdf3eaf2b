package chi

import (
	"errors"
	"net/http"

	"github.com/kailas-cloud/loksabha/internal/domain"
)

// ErrorCode is the machine-readable code of an error response.
type ErrorCode string

// Error response codes.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodeInvalidArgument   ErrorCode = "invalid_argument"
	CodeNotFound          ErrorCode = "not_found"
	CodeSourceUnavailable ErrorCode = "source_unavailable"
	CodeInternalError     ErrorCode = "internal_error"
)

// Public messages. Client-facing wording is kept from the legacy API.
const (
	msgInvalidArgument   = "Atleast one parameter is required"
	msgNotFound          = "Image not found"
	msgSourceUnavailable = "source unavailable"
	msgInternal          = "internal error"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"error"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, CodeInvalidArgument, msgInvalidArgument),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound, msgNotFound),
		sentinelHandler(domain.ErrSourceUnavailable,
			http.StatusServiceUnavailable, CodeSourceUnavailable, msgSourceUnavailable),
	}
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode, msg string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}
