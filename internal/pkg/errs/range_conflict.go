package errs

import (
	"errors"
	"fmt"
)

// ErrRangeConflict is the sentinel for every RangeConflictError.
var ErrRangeConflict = errors.New("serial range conflict")

// RangeConflictError reports that a requested serial range intersects an existing one.
type RangeConflictError struct {
	Requested   string
	Conflicting string
	OwnerID     any
}

// NewRangeConflictError creates a RangeConflictError naming the owner of the conflicting range.
func NewRangeConflictError(requested, conflicting string, ownerID any) *RangeConflictError {
	return &RangeConflictError{
		Requested:   requested,
		Conflicting: conflicting,
		OwnerID:     ownerID,
	}
}

func (e *RangeConflictError) Error() string {
	return fmt.Sprintf("%s: %s overlaps %s of %s",
		ErrRangeConflict, e.Requested, e.Conflicting, sanitize(e.OwnerID))
}

func (e *RangeConflictError) Unwrap() error {
	return ErrRangeConflict
}
