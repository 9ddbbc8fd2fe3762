package types

import (
	"errors"
	"fmt"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrLocationNotFound     = errors.New("location not found")

	// ErrConflict signals a duplicate unique key (email or CNPJ) on create.
	ErrConflict = errors.New("already registered")

	// ErrForbidden signals that the caller is not the owner of the resource.
	ErrForbidden = errors.New("access denied")

	// ErrUnauthorized signals missing or invalid credentials.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrEmptyPatch signals an update request that names no fields.
	ErrEmptyPatch = errors.New("no fields to update")
)

// ValidationError reports malformed or rejected input. The message is safe to
// return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ThrottledError reports that the 30-day profile cooldown has not elapsed.
type ThrottledError struct {
	DaysRemaining int
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("update not allowed for another %d day(s)", e.DaysRemaining)
}

// ExternalServiceError wraps a failure from a third-party collaborator
// (geocoding, blob store, lookup APIs).
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
