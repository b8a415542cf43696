package errs

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is the sentinel for every CapacityExceededError.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// CapacityExceededError reports that a requested quantity is larger than the pool it draws from.
type CapacityExceededError struct {
	ParamName string
	Requested int
	Available int
}

// NewCapacityExceededError creates a CapacityExceededError.
func NewCapacityExceededError(paramName string, requested, available int) *CapacityExceededError {
	return &CapacityExceededError{
		ParamName: paramName,
		Requested: requested,
		Available: available,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %s requested %d, available %d",
		ErrCapacityExceeded, e.ParamName, e.Requested, e.Available)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
