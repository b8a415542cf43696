package bundle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"garment/internal/core/domain/model/cutting"
	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"
)

var (
	// ErrBundleIsNotConstructed is returned when a Bundle was not created through
	// NewBundle or RestoreBundle.
	ErrBundleIsNotConstructed = errors.New("Bundle must be created via NewBundle or RestoreBundle")

	// ErrIDAlreadyAssigned is returned when storage tries to assign an id twice.
	ErrIDAlreadyAssigned = errors.New("bundle id is already assigned")
)

// Bundle is the aggregate root of bundling.
//
// A freshly created bundle has id 0 until storage assigns one with AssignID.
type Bundle struct {
	id        int64
	cuttingID int64
	space     kernel.SerialSpace
	size      string
	qty       int
	serial    kernel.SerialRange

	// consumption is nil while the bundle is available for loading
	consumption *Consumption

	createdBy     string
	lastChangedBy string
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewBundle creates a bundle of qty pieces cut by entry, numbered by serial.
//
// Returns a ValueIsInvalidError when qty differs from the range length.
func NewBundle(entry *cutting.Entry, qty int, serial kernel.SerialRange, actor string, now time.Time) (*Bundle, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	b := &Bundle{
		cuttingID:     entry.ID(),
		space:         entry.Space(),
		size:          entry.Size(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setShape(qty, serial),
		b.setActor(actor),
	); err != nil {
		return nil, err
	}
	b.createdBy = actor

	return b, nil
}

// RestoreBundle rebuilds a bundle read from storage. consumption may be nil.
func RestoreBundle(
	id int64,
	cuttingID int64,
	space kernel.SerialSpace,
	size string,
	qty int,
	serial kernel.SerialRange,
	consumption *Consumption,
	createdBy string,
	lastChangedBy string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Bundle, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(size) == "" {
		return nil, errs.NewValueIsRequiredError("size")
	}

	b := &Bundle{
		id:            id,
		cuttingID:     cuttingID,
		space:         space,
		size:          size,
		createdBy:     createdBy,
		lastChangedBy: lastChangedBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if err := b.setShape(qty, serial); err != nil {
		return nil, err
	}
	if consumption != nil {
		c := *consumption
		b.consumption = &c
	}
	return b, nil
}

func (b *Bundle) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBundleIsNotConstructed
	}
	return nil
}

// AssignID stores the identifier generated by storage on first insert.
func (b *Bundle) AssignID(id int64) error {
	if b.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("bundleId", fmt.Errorf("%d is not greater than 0", id))
	}
	b.id = id
	return nil
}

func (b *Bundle) ID() int64                  { return b.id }
func (b *Bundle) CuttingID() int64           { return b.cuttingID }
func (b *Bundle) Space() kernel.SerialSpace  { return b.space }
func (b *Bundle) StyleID() string            { return b.space.StyleID() }
func (b *Bundle) ColourCode() string         { return b.space.ColourCode() }
func (b *Bundle) Size() string               { return b.size }
func (b *Bundle) Qty() int                   { return b.qty }
func (b *Bundle) Serial() kernel.SerialRange { return b.serial }
func (b *Bundle) CreatedBy() string          { return b.createdBy }
func (b *Bundle) LastChangedBy() string      { return b.lastChangedBy }
func (b *Bundle) CreatedAt() time.Time       { return b.createdAt }
func (b *Bundle) UpdatedAt() time.Time       { return b.updatedAt }

// Consumption returns a copy of the consumption link, or nil when the bundle is available.
func (b *Bundle) Consumption() *Consumption {
	if b.consumption == nil {
		return nil
	}
	c := *b.consumption
	return &c
}

func (b *Bundle) IsConsumed() bool {
	return b.consumption != nil
}

// FinalQty is the quantity handed to the line, or 0 while not consumed.
func (b *Bundle) FinalQty() int {
	if b.consumption == nil {
		return 0
	}
	return b.consumption.FinalQty
}

// Resize changes qty and serial range of an available bundle.
//
// Returns a LockedError when the bundle is consumed and a ValueIsInvalidError
// when qty differs from the range length.
func (b *Bundle) Resize(qty int, serial kernel.SerialRange, actor string, now time.Time) error {
	if b.IsConsumed() {
		return b.lockedError("consumed by a loading transaction")
	}
	if strings.TrimSpace(actor) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if err := b.setShape(qty, serial); err != nil {
		return err
	}
	b.lastChangedBy = actor
	b.updatedAt = now
	return nil
}

// Consume stamps the bundle with the loading transaction that takes it to a line.
// finalQty = qty - minusQty, floored at 0.
func (b *Bundle) Consume(loadingID kernel.UUID, categoryName string, minusQty int, reason string,
	actor string, now time.Time,
) error {
	if b.IsConsumed() {
		return b.lockedError("already consumed by loading " + b.consumption.LoadingID.String())
	}
	if err := loadingID.Validate(); err != nil {
		return err
	}
	if minusQty < 0 {
		return errs.NewValueIsOutOfRangeError("minusQty", minusQty, 0, b.qty)
	}
	if err := b.setActor(actor); err != nil {
		return err
	}

	b.consumption = &Consumption{
		LoadingID:    loadingID,
		CategoryName: categoryName,
		MinusQty:     minusQty,
		MinusReason:  strings.TrimSpace(reason),
		FinalQty:     finalQty(b.qty, minusQty),
	}
	b.updatedAt = now
	return nil
}

// Release clears the consumption link and returns the bundle to the available pool.
func (b *Bundle) Release(actor string, now time.Time) {
	b.consumption = nil
	if actor != "" {
		b.lastChangedBy = actor
	}
	b.updatedAt = now
}

// EnsureDeletable fails with a LockedError when the bundle is consumed or when
// operation records already reference it.
func (b *Bundle) EnsureDeletable(usedDownstream bool) error {
	if b.IsConsumed() {
		return b.lockedError("consumed by a loading transaction")
	}
	if usedDownstream {
		return b.lockedError("referenced by operation records")
	}
	return nil
}

func (b *Bundle) lockedError(reason string) error {
	return errs.NewLockedError("bundle", b.id, reason)
}

func (b *Bundle) setShape(qty int, serial kernel.SerialRange) error {
	if err := serial.Validate(); err != nil {
		return err
	}
	if qty != serial.Len() {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("qty %d does not match range %s of length %d", qty, serial, serial.Len()))
	}
	b.qty = qty
	b.serial = serial
	return nil
}

func (b *Bundle) setActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	b.lastChangedBy = actor
	return nil
}
