package services

import (
	"fmt"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"
)

// TakenRange is a serial range already owned by a bundle of the same serial space.
type TakenRange struct {
	BundleID int64
	Range    kernel.SerialRange
}

// SerialAllocator validates a requested bundle range against the serial space
// and the cut quantity still free for bundling.
//
// Example usage:
//
//	allocator := NewSerialAllocator()
//	requested, _ := kernel.NewSerialRange(61, 100)
//	if err := allocator.Check(40, requested, available, taken); err != nil {
//	    // ValueIsInvalid, RangeConflict or CapacityExceeded
//	}
type SerialAllocator struct{}

func NewSerialAllocator() SerialAllocator {
	return SerialAllocator{}
}

// Check runs, in order:
//   - qty must equal the range length (ValueIsInvalidError)
//   - the range must not intersect any taken range (RangeConflictError)
//   - qty must not exceed available (CapacityExceededError)
//
// taken must already exclude the bundle being edited.
func (SerialAllocator) Check(qty int, requested kernel.SerialRange, available int, taken []TakenRange) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	if qty != requested.Len() {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("qty %d does not match range %s of length %d", qty, requested, requested.Len()))
	}

	for _, t := range taken {
		if requested.Overlaps(t.Range) {
			return errs.NewRangeConflictError(requested.String(), t.Range.String(), fmt.Sprintf("bundle %d", t.BundleID))
		}
	}

	if qty > available {
		return errs.NewCapacityExceededError("cut quantity", qty, max(available, 0))
	}
	return nil
}

// NextStartingNumber is one past the highest ending number, or SerialStartMin
// for an empty space.
func (SerialAllocator) NextStartingNumber(taken []kernel.SerialRange) int {
	next := kernel.SerialStartMin
	for _, r := range taken {
		if r.Next() > next {
			next = r.Next()
		}
	}
	return next
}
