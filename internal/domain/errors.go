package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error taxonomy: dataset integrity failures are
// load-time fatal, query misses surface as NotFound at the API boundary, and
// invalid transition input is rejected without touching session state.
var (
	// ErrNotFound resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput input failed validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDataset dataset failed load-time integrity validation
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrInternal internal error
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code and a user-presentable message alongside
// the wrapped sentinel
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (used for logs and internal wrapping)
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal details
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a resource-not-found error
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewInvalidInputError creates an invalid-input error
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewInvalidDatasetError creates a dataset integrity error
func NewInvalidDatasetError(message string) error {
	return &DomainError{
		Code:    "INVALID_DATASET",
		Message: message,
		Err:     ErrInvalidDataset,
	}
}

// NewInternalError creates an internal error that hides details from users
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a resource-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is an invalid-input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidDataset reports whether err is a dataset integrity error
func IsInvalidDataset(err error) bool {
	return errors.Is(err, ErrInvalidDataset)
}

// IsInternalError reports whether err is an internal error
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
