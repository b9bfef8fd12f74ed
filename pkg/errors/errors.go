package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups errors by how the dashboard reacts to them.
type Kind string

const (
	KindTransport    Kind = "transport"
	KindAuth         Kind = "authorization"
	KindRejected     Kind = "validation"
	KindPrecondition Kind = "precondition"
	KindInternal     Kind = "internal"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Kind    Kind   `json:"kind,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so that clones and wraps still compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, kind Kind, message string) *Error {
	return &Error{Code: code, Status: status, Kind: kind, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, base *Error, message string) *Error {
	wrapped := Clone(base, message)
	wrapped.Err = err
	return wrapped
}

// Predefined errors for common scenarios.
var (
	ErrNotFound            = New("NOT_FOUND", http.StatusNotFound, KindRejected, "resource not found")
	ErrForbidden           = New("FORBIDDEN", http.StatusForbidden, KindAuth, "forbidden")
	ErrUnauthorized        = New("UNAUTHORIZED", http.StatusUnauthorized, KindAuth, "unauthorized")
	ErrConflict            = New("CONFLICT", http.StatusConflict, KindRejected, "conflict")
	ErrInFlight            = New("IN_FLIGHT", http.StatusConflict, KindPrecondition, "action already in progress")
	ErrPreconditionFailed  = New("PRECONDITION_FAILED", http.StatusPreconditionFailed, KindPrecondition, "precondition failed")
	ErrValidation          = New("VALIDATION_ERROR", http.StatusBadRequest, KindPrecondition, "validation failed")
	ErrUpstreamRejected    = New("UPSTREAM_REJECTED", http.StatusUnprocessableEntity, KindRejected, "request rejected")
	ErrUpstreamUnavailable = New("UPSTREAM_UNAVAILABLE", http.StatusBadGateway, KindTransport, "upstream unavailable")
	ErrInternal            = New("INTERNAL_ERROR", http.StatusInternalServerError, KindInternal, "internal server error")
	ErrCacheMiss           = New("CACHE_MISS", http.StatusNotFound, KindInternal, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
