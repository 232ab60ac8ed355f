package common

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden access")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict") // e.g. email already registered
	ErrInternalServer = errors.New("internal server error")
)

type messageError struct {
	kind    error
	message string
}

func (e *messageError) Error() string { return e.message }
func (e *messageError) Unwrap() error { return e.kind }

// WithMessage pairs a user-facing message with one of the sentinel errors
// above. errors.Is still matches the sentinel, but Error() carries only the
// message, so it can be written to a response as-is.
func WithMessage(kind error, message string) error {
	return &messageError{kind: kind, message: message}
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
//
// Conflicts map to 400 rather than 409: the public contract reports a
// duplicate email as a plain bad request.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
