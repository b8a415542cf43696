package kernel

import (
	"fmt"

	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

// SerialStartMin is the first serial number of every serial space.
const SerialStartMin = 1

var ErrSerialRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"serial range must be created via NewSerialRange")

// SerialRange is the closed interval [start, end] of serial numbers stamped on the
// pieces of one bundle.
type SerialRange struct {
	start int
	end   int
	guard guard.ConstructorGuard
}

// NewSerialRange requires SerialStartMin <= start <= end.
func NewSerialRange(start, end int) (SerialRange, error) {
	if start < SerialStartMin {
		return SerialRange{}, errs.NewValueIsOutOfRangeError("startingNo", start, SerialStartMin, end)
	}
	if end < start {
		return SerialRange{}, errs.NewValueIsOutOfRangeError("endingNo", end, start, "unbounded")
	}
	return SerialRange{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (r SerialRange) Start() int {
	return r.start
}

func (r SerialRange) End() int {
	return r.end
}

// Len is the number of pieces covered by the range.
func (r SerialRange) Len() int {
	return r.end - r.start + 1
}

// Overlaps reports whether the two closed intervals share at least one serial number.
func (r SerialRange) Overlaps(other SerialRange) bool {
	return r.start <= other.end && other.start <= r.end
}

// Next is the first serial number after the range.
func (r SerialRange) Next() int {
	return r.end + 1
}

func (r SerialRange) IsEqual(other SerialRange) bool {
	return r.start == other.start && r.end == other.end
}

func (r SerialRange) Validate() error {
	return r.guard.Validate(ErrSerialRangeIsNotConstructed)
}

func (r SerialRange) String() string {
	return fmt.Sprintf("[%d-%d]", r.start, r.end)
}
