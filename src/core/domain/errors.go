package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Domain error types for consistent error handling across the application.
// These errors represent business rule violations and domain constraints.

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict with the current state.
	ErrConflict = errors.New("conflict")
)

// FeatureNotFoundError indicates the referenced feature id does not exist.
type FeatureNotFoundError struct {
	FeatureID uuid.UUID
}

func (e *FeatureNotFoundError) Error() string {
	return fmt.Sprintf("Feature with id %s not found", e.FeatureID)
}

// Unwrap returns the base error for errors.Is/As support.
func (e *FeatureNotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewFeatureNotFoundError creates a not-found error carrying the requested id.
func NewFeatureNotFoundError(featureID uuid.UUID) *FeatureNotFoundError {
	return &FeatureNotFoundError{FeatureID: featureID}
}

// DuplicateVoteError indicates the voter has already voted for the feature.
type DuplicateVoteError struct {
	FeatureID      uuid.UUID
	UserIdentifier string
}

func (e *DuplicateVoteError) Error() string {
	return fmt.Sprintf("User %s has already voted for feature %s", e.UserIdentifier, e.FeatureID)
}

func (e *DuplicateVoteError) Unwrap() error {
	return ErrConflict
}

// NewDuplicateVoteError creates a conflict error carrying the vote identity pair.
func NewDuplicateVoteError(featureID uuid.UUID, userIdentifier string) *DuplicateVoteError {
	return &DuplicateVoteError{FeatureID: featureID, UserIdentifier: userIdentifier}
}

// InvalidFeatureDataError indicates feature input failed a field constraint.
type InvalidFeatureDataError struct {
	Message string
}

func (e *InvalidFeatureDataError) Error() string {
	return e.Message
}

func (e *InvalidFeatureDataError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidFeatureDataError creates a validation error with a human-readable message.
func NewInvalidFeatureDataError(message string) *InvalidFeatureDataError {
	return &InvalidFeatureDataError{Message: message}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
