package errs

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied is the sentinel for every PermissionDeniedError.
var ErrPermissionDenied = errors.New("permission denied")

// PermissionDeniedError reports a failed role or seniority gate.
type PermissionDeniedError struct {
	Subject string
	Action  string
	Reason  string
}

// NewPermissionDeniedError creates a PermissionDeniedError.
func NewPermissionDeniedError(subject, action, reason string) *PermissionDeniedError {
	return &PermissionDeniedError{
		Subject: subject,
		Action:  action,
		Reason:  reason,
	}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s (%s)", ErrPermissionDenied, e.Subject, e.Action, e.Reason)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
