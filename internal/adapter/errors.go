package adapter

import (
	"errors"
	"fmt"

	"github.com/werlleyg/boilerplate-api/internal/validators"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	errEmptyBaseURL = errors.New("empty base URL")
)

// APIError is a non-2xx response decoded from the service error envelope.
// Issues is only set for validation failures.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Issues     []validators.FieldError

	kind error
}

func (e *APIError) Error() string {
	if len(e.Issues) > 0 {
		return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.Status, validators.NewValidationError(e.Issues...).Error())
	}

	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
