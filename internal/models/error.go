package models

import (
	"errors"
	"fmt"
)

var (
	ErrConflictData = errors.New("data conflicts with existing data")
	ErrDataNotFound = errors.New("data not found")
	ErrValidation   = errors.New("validation failed")
	ErrProvider     = errors.New("payment provider failure")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrOrderPaid    = errors.New("order already paid")
	ErrInternal     = errors.New("internal error")
)

// ValidationError returns validation error for field
func ValidationError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}

// ProviderError is error of payment provider call
type ProviderError struct {
	Op  string
	Err error
}

// NewProviderError creates new ProviderError
func NewProviderError(op string, err error) ProviderError {
	return ProviderError{Op: op, Err: err}
}

func (e ProviderError) Error() string {
	return fmt.Sprintf("payment provider %s: %v", e.Op, e.Err)
}

func (e ProviderError) Unwrap() []error {
	return []error{ErrProvider, e.Err}
}
