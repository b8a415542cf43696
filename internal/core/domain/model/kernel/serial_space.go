package kernel

import (
	"strings"

	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

var ErrSerialSpaceIsNotConstructed = errs.NewValueIsRequiredError(
	"serial space must be created via NewSerialSpace")

// SerialSpace identifies one serial-number sequence. Every bundle of the same style
// and colour draws its range from the same space, so ranges inside a space must
// stay pairwise disjoint.
type SerialSpace struct {
	styleID    string
	colourCode string
	guard      guard.ConstructorGuard
}

func NewSerialSpace(styleID, colourCode string) (SerialSpace, error) {
	styleID = strings.TrimSpace(styleID)
	colourCode = strings.TrimSpace(colourCode)
	if styleID == "" {
		return SerialSpace{}, errs.NewValueIsRequiredError("styleId")
	}
	if colourCode == "" {
		return SerialSpace{}, errs.NewValueIsRequiredError("colourCode")
	}
	return SerialSpace{
		styleID:    styleID,
		colourCode: colourCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (s SerialSpace) StyleID() string {
	return s.styleID
}

func (s SerialSpace) ColourCode() string {
	return s.colourCode
}

// Key is the stable lock key of the space.
func (s SerialSpace) Key() string {
	return "serial:" + s.styleID + "/" + s.colourCode
}

func (s SerialSpace) IsEqual(other SerialSpace) bool {
	return s.styleID == other.styleID && s.colourCode == other.colourCode
}

func (s SerialSpace) Validate() error {
	return s.guard.Validate(ErrSerialSpaceIsNotConstructed)
}
