package queries

import (
	"errors"
	"strings"

	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

var (
	ErrListAvailableBundlesQueryIsNotConstructed = errors.New(
		"ListAvailableBundlesQuery must be created via NewListAvailableBundlesQuery constructor",
	)
)

// ListAvailableBundlesQuery lists the bundles of an order that no loading
// transaction has consumed yet.
type ListAvailableBundlesQuery struct {
	orderID string
	guard   guard.ConstructorGuard
}

func NewListAvailableBundlesQuery(orderID string) (ListAvailableBundlesQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ListAvailableBundlesQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return ListAvailableBundlesQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableBundlesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableBundlesQueryIsNotConstructed)
}

func (q ListAvailableBundlesQuery) OrderID() string { return q.orderID }

type AvailableBundle struct {
	ID         int64
	CuttingID  int64
	LayNo      int
	StyleID    string
	ColourCode string
	Size       string
	Qty        int
	StartingNo int
	EndingNo   int
}
