package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

var ErrCreateLoadingTransactionCommandIsNotConstructed = errors.New(
	"CreateLoadingTransactionCommand must be created via NewCreateLoadingTransactionCommand constructor",
)

// BundleSelection is one bundle of the loading payload with the pieces deducted
// at loading time.
type BundleSelection struct {
	BundleID int64
	MinusQty int
	Reason   string
}

// CreateLoadingTransactionCommand starts a loading of an order onto a line.
// When quantities is empty they are derived from the selected bundles' final qty.
type CreateLoadingTransactionCommand struct { //nolint:recvcheck //using for validation
	employeeID string
	lineNo     int
	orderID    string
	quantities kernel.SizeQuantities
	selections []BundleSelection
	actor      string

	guard guard.ConstructorGuard
}

func NewCreateLoadingTransactionCommand(
	employeeID string,
	lineNo int,
	orderID string,
	quantities kernel.SizeQuantities,
	selections []BundleSelection,
	actor string,
) (CreateLoadingTransactionCommand, error) {
	cmd := CreateLoadingTransactionCommand{
		quantities: quantities,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setRequired(&cmd.employeeID, "employeeId", employeeID),
		cmd.setLineNo(lineNo),
		setRequired(&cmd.orderID, "orderId", orderID),
		cmd.setSelections(selections),
		setRequired(&cmd.actor, "actor", actor),
	); err != nil {
		return CreateLoadingTransactionCommand{}, err
	}

	if quantities.IsEmpty() && len(selections) == 0 {
		return CreateLoadingTransactionCommand{}, errs.NewValueIsInvalidErrorWithCause("quantities",
			errors.New("either quantities or bundles must be supplied"))
	}

	return cmd, nil
}

func (c CreateLoadingTransactionCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadingTransactionCommandIsNotConstructed)
}

func (c CreateLoadingTransactionCommand) EmployeeID() string                { return c.employeeID }
func (c CreateLoadingTransactionCommand) LineNo() int                       { return c.lineNo }
func (c CreateLoadingTransactionCommand) OrderID() string                   { return c.orderID }
func (c CreateLoadingTransactionCommand) Quantities() kernel.SizeQuantities { return c.quantities }
func (c CreateLoadingTransactionCommand) Actor() string                     { return c.actor }

func (c CreateLoadingTransactionCommand) Selections() []BundleSelection {
	return slices.Clone(c.selections)
}

// BundleIDs returns the selected bundle ids in ascending order.
func (c CreateLoadingTransactionCommand) BundleIDs() []int64 {
	ids := make([]int64, len(c.selections))
	for i, s := range c.selections {
		ids[i] = s.BundleID
	}
	slices.Sort(ids)
	return ids
}

func (c *CreateLoadingTransactionCommand) setLineNo(lineNo int) error {
	if lineNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("lineNo", fmt.Errorf("%d is not greater than 0", lineNo))
	}
	c.lineNo = lineNo
	return nil
}

func (c *CreateLoadingTransactionCommand) setSelections(selections []BundleSelection) error {
	seen := make(map[int64]struct{}, len(selections))
	out := make([]BundleSelection, 0, len(selections))
	for _, s := range selections {
		if s.BundleID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("bundleId", fmt.Errorf("%d is not greater than 0", s.BundleID))
		}
		if _, dup := seen[s.BundleID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("bundles", fmt.Errorf("bundle %d is selected twice", s.BundleID))
		}
		if s.MinusQty < 0 {
			return errs.NewValueIsOutOfRangeError("minusQty", s.MinusQty, 0, "bundle qty")
		}
		seen[s.BundleID] = struct{}{}
		out = append(out, BundleSelection{BundleID: s.BundleID, MinusQty: s.MinusQty, Reason: strings.TrimSpace(s.Reason)})
	}
	c.selections = out
	return nil
}
