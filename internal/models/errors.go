package models

import (
	"fmt"
	"net/http"
)

// Kind classifies an API failure. Each kind maps to exactly one HTTP status.
type Kind string

const (
	KindValidation     Kind = "ValidationError"
	KindAuthentication Kind = "AuthenticationError"
	KindAuthorization  Kind = "AuthorizationError"
	KindNotFound       Kind = "NotFoundError"
	KindConflict       Kind = "ConflictError"
	KindInternal       Kind = "InternalError"
)

// StatusCode returns the HTTP status for the kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the single structured failure type returned by services.
// Message and Details are safe to show to the caller.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, msg string, details any) *Error {
	return &Error{Kind: kind, Message: msg, StatusCode: kind.StatusCode(), Details: details}
}

func NewValidationError(msg string, details any) *Error {
	return newError(KindValidation, msg, details)
}

func NewAuthenticationError(msg string) *Error {
	return newError(KindAuthentication, msg, nil)
}

func NewAuthorizationError(msg string, details any) *Error {
	return newError(KindAuthorization, msg, details)
}

func NewNotFoundError(msg string, details any) *Error {
	return newError(KindNotFound, msg, details)
}

func NewConflictError(msg string, details any) *Error {
	return newError(KindConflict, msg, details)
}

// NewInternalError carries the generic message only; the cause is logged, never returned.
func NewInternalError() *Error {
	return newError(KindInternal, "Internal server error", nil)
}
