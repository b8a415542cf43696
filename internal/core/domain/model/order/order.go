package order

import (
	"errors"
	"strings"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/sizecategory"
	"garment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder")
)

// Order is a production order as seen by bundling and loading.
type Order struct {
	// id is the business order number, e.g. "PO-24-0117"
	id string

	// styleID is the garment style the order produces
	styleID string

	// category is the size-category whose sizes the order uses
	category *sizecategory.SizeCategory

	// quantities is the ordered quantity per size, in category order
	quantities kernel.SizeQuantities

	isConstructed bool
}

// RestoreOrder rebuilds an order read from storage. Quantities are validated
// against the category's sizes and reordered to follow them.
func RestoreOrder(
	id string,
	styleID string,
	category *sizecategory.SizeCategory,
	quantities kernel.SizeQuantities,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setStyleID(styleID),
		o.setCategory(category),
	); err != nil {
		return nil, err
	}
	if err := o.setQuantities(quantities); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order number.
func (o *Order) ID() string {
	return o.id
}

// StyleID returns the style the order produces.
func (o *Order) StyleID() string {
	return o.styleID
}

// Category returns the order's size-category.
func (o *Order) Category() *sizecategory.SizeCategory {
	return o.category
}

// Quantities returns the ordered quantity per size.
func (o *Order) Quantities() kernel.SizeQuantities {
	return o.quantities
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.id = id
	return nil
}

func (o *Order) setStyleID(styleID string) error {
	if strings.TrimSpace(styleID) == "" {
		return errs.NewValueIsRequiredError("styleId")
	}
	o.styleID = styleID
	return nil
}

func (o *Order) setCategory(category *sizecategory.SizeCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

func (o *Order) setQuantities(quantities kernel.SizeQuantities) error {
	sizes := o.category.Sizes()
	if err := quantities.ValidateSizes(sizes); err != nil {
		return err
	}
	o.quantities = quantities.Ordered(sizes)
	return nil
}
