package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches any *Error with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable matches any *Error produced without an HTTP response.
	ErrUnavailable = errors.New("server unavailable")
	// ErrDefaultInitialized is returned by InitDefault on a second call.
	ErrDefaultInitialized = errors.New("default client already initialized")
)

// Error is the single error kind returned by the client.
type Error struct {
	// Status is the HTTP status, or the HTTP-shaped status of a local failure.
	// 0 means no response was received.
	Status int
	// Message is human readable.
	Message string
	// Field names the offending input of a local validation failure.
	Field string
	// Details is the parsed error body (JSON value or text) of a server error,
	// or {"field": Field} for validation failures.
	Details any
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrUnavailable:
		return e.Status == 0
	}
	return false
}

func validationError(field, msg string) *Error {
	e := &Error{Status: http.StatusBadRequest, Message: msg, Field: field}
	if field != "" {
		e.Details = map[string]string{"field": field}
	}
	return e
}

func unauthenticatedError() *Error {
	return &Error{Status: http.StatusUnauthorized, Message: "Authentication required"}
}

func malformedResponseError(msg string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg, Err: cause}
}

func transportError(method, path string, cause error) *Error {
	return &Error{Message: fmt.Sprintf("%s %s: %v", method, path, cause), Err: cause}
}

// StatusCode returns the status carried by err, or -1 if err is not an *Error.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return -1
}

// FieldOf returns the validation field tag carried by err, if any.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
