// Package apperrors defines the error taxonomy shared across services.
// Handlers map these sentinels onto HTTP status classes and feedback codes;
// internal detail stays in logs and is never returned to the caller verbatim.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or contradictory request fields
	ErrValidation = errors.New("invalid request")
	// ErrForbidden marks a caller that is not the resource's owner or passenger
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a referenced route or checkpoint that does not exist
	ErrNotFound = errors.New("not found")
	// ErrCapacityExceeded marks an accept on a route already at max passengers
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrEmailTaken marks a registration against an address already in use
	ErrEmailTaken = errors.New("e-mail already in use")
	// ErrWrongCredentials marks a login with an unknown address or bad password
	ErrWrongCredentials = errors.New("wrong credentials")
	// ErrStorage marks a database failure
	ErrStorage = errors.New("storage failure")
	// ErrExternalService marks a routing-service failure or timeout
	ErrExternalService = errors.New("external service failure")
)

// NewValidation wraps ErrValidation with a specific reason.
func NewValidation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// WrapStorage wraps a database error so callers can match on ErrStorage.
func WrapStorage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// WrapExternal wraps a routing-service error so callers can match on ErrExternalService.
func WrapExternal(err error) error {
	return fmt.Errorf("%w: %v", ErrExternalService, err)
}
