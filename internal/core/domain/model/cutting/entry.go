// Package cutting is the read-only view of the cutting ledger: pieces cut per
// order, lay and size. Entries are owned by the cutting department and only
// consulted by bundling.
package cutting

import (
	"errors"
	"fmt"
	"strings"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("cutting entry must be created via RestoreEntry")

// Entry is one cut record: qty pieces of one size from one lay of an order.
type Entry struct {
	id      int64
	orderID string
	layNo   int
	space   kernel.SerialSpace
	size    string
	qty     int

	isConstructed bool
}

// RestoreEntry rebuilds an entry read from storage.
func RestoreEntry(id int64, orderID string, layNo int, styleID, colourCode, size string, qty int) (*Entry, error) {
	space, err := kernel.NewSerialSpace(styleID, colourCode)
	if err != nil {
		return nil, err
	}

	e := &Entry{space: space, isConstructed: true}
	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setLayNo(layNo),
		e.setSize(size),
		e.setQty(qty),
	); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() int64                 { return e.id }
func (e *Entry) OrderID() string           { return e.orderID }
func (e *Entry) LayNo() int                { return e.layNo }
func (e *Entry) Space() kernel.SerialSpace { return e.space }
func (e *Entry) StyleID() string           { return e.space.StyleID() }
func (e *Entry) ColourCode() string        { return e.space.ColourCode() }
func (e *Entry) Size() string              { return e.size }
func (e *Entry) Qty() int                  { return e.qty }

// AvailableForBundling is the cut quantity not yet covered by bundles.
func (e *Entry) AvailableForBundling(bundledQty int) int {
	return e.qty - bundledQty
}

func (e *Entry) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cuttingId", fmt.Errorf("%d is not greater than 0", id))
	}
	e.id = id
	return nil
}

func (e *Entry) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	e.orderID = orderID
	return nil
}

func (e *Entry) setLayNo(layNo int) error {
	if layNo < 0 {
		return errs.NewValueIsOutOfRangeError("layNo", layNo, 0, "unbounded")
	}
	e.layNo = layNo
	return nil
}

func (e *Entry) setSize(size string) error {
	if strings.TrimSpace(size) == "" {
		return errs.NewValueIsRequiredError("size")
	}
	e.size = size
	return nil
}

func (e *Entry) setQty(qty int) error {
	if qty < 0 {
		return errs.NewValueIsOutOfRangeError("qty", qty, 0, "unbounded")
	}
	e.qty = qty
	return nil
}
