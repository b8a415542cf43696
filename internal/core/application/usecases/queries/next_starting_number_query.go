package queries

import (
	"errors"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/guard"
)

var (
	ErrNextStartingNumberQueryIsNotConstructed = errors.New(
		"NextStartingNumberQuery must be created via NewNextStartingNumberQuery constructor",
	)
)

// NextStartingNumberQuery asks for the first free serial number of a
// style/colour serial space, used to seed the next bundle's starting number.
type NextStartingNumberQuery struct {
	space kernel.SerialSpace
	guard guard.ConstructorGuard
}

func NewNextStartingNumberQuery(styleID, colourCode string) (NextStartingNumberQuery, error) {
	space, err := kernel.NewSerialSpace(styleID, colourCode)
	if err != nil {
		return NextStartingNumberQuery{}, err
	}
	return NextStartingNumberQuery{space: space, guard: guard.NewConstructorGuard()}, nil
}

func (q NextStartingNumberQuery) Validate() error {
	return q.guard.Validate(ErrNextStartingNumberQueryIsNotConstructed)
}

func (q NextStartingNumberQuery) Space() kernel.SerialSpace { return q.space }
