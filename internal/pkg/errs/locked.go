package errs

import (
	"errors"
	"fmt"
)

// ErrLocked is the sentinel for every LockedError.
var ErrLocked = errors.New("object is locked")

// LockedError reports a mutation attempted on an object that is consumed or used downstream.
type LockedError struct {
	ParamName string
	ID        any
	Reason    string
}

// NewLockedError creates a LockedError.
func NewLockedError(paramName string, id any, reason string) *LockedError {
	return &LockedError{
		ParamName: paramName,
		ID:        id,
		Reason:    reason,
	}
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%s: %s %s (%s)", ErrLocked, e.ParamName, sanitize(e.ID), e.Reason)
}

func (e *LockedError) Unwrap() error {
	return ErrLocked
}
