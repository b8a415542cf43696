package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel for every InvalidStateError.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError reports a state-machine transition attempted from the wrong state.
type InvalidStateError struct {
	Action  string
	Current string
}

// NewInvalidStateError creates an InvalidStateError.
func NewInvalidStateError(action, current string) *InvalidStateError {
	return &InvalidStateError{
		Action:  action,
		Current: current,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s", ErrInvalidState, e.Action, e.Current)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
