// Package apperr classifies failures so handlers can translate them into
// HTTP responses without inspecting error strings.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds. Use errors.Is against these to branch on classification.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication required")
	ErrAuthorization  = errors.New("permission denied")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrStorage        = errors.New("storage failure")
)

type classified struct {
	kind error
	msg  string
	err  error
}

func (e *classified) Error() string { return e.msg }

func (e *classified) Is(target error) bool { return target == e.kind }

func (e *classified) Unwrap() error { return e.err }

func Validation(format string, args ...interface{}) error {
	return &classified{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func Authentication(format string, args ...interface{}) error {
	return &classified{kind: ErrAuthentication, msg: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...interface{}) error {
	return &classified{kind: ErrAuthorization, msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &classified{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &classified{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Storage wraps an underlying store error. The cause is kept for logging
// but never serialized to clients.
func Storage(err error) error {
	return &classified{kind: ErrStorage, msg: "internal server error", err: err}
}

// StatusCode maps a classified error to an HTTP status. Unclassified
// errors are treated as internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns a client-safe message. Storage and unclassified errors
// collapse to a generic message so query text never leaks.
func Message(err error) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
