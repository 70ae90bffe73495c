package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput signals a malformed request (bad coordinates, empty address, unknown filter).
	ErrInvalidInput = errors.New("invalid input")
	// ErrPreconditionNotMet signals an interaction that must be ignored silently
	// (not authenticated, wrong active tab).
	ErrPreconditionNotMet = errors.New("precondition not met")
	// ErrServiceUnavailable signals a failed call to the external geo backend.
	ErrServiceUnavailable = errors.New("geo service unavailable")

	// ErrNoResults signals an empty candidate or feature set from the backend.
	ErrNoResults = errors.New("no results")
	// ErrMalformedResponse signals a backend payload missing required fields.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrCredentialExpired signals a rejected or expired backend token.
	ErrCredentialExpired = errors.New("credential expired")
)

// ServiceError wraps a backend failure with the operation that produced it.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrServiceUnavailable.Error())
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrServiceUnavailable.Error(), e.Err.Error())
}

// Is makes errors.Is(err, ErrServiceUnavailable) hold for every ServiceError.
func (e *ServiceError) Is(target error) bool { return target == ErrServiceUnavailable }

func (e *ServiceError) Unwrap() error { return e.Err }

// NewServiceError creates a service error for the given backend operation.
func NewServiceError(op string, err error) error {
	return &ServiceError{Op: op, Err: err}
}
