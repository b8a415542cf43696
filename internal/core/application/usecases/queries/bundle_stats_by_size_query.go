package queries

import (
	"errors"
	"strings"

	"garment/internal/core/domain/services"
	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

var (
	ErrBundleStatsBySizeQueryIsNotConstructed = errors.New(
		"BundleStatsBySizeQuery must be created via NewBundleStatsBySizeQuery constructor",
	)
)

// BundleStatsBySizeQuery requests the per-size bundling progress of an order.
//
// Example:
//
//	query, _ := NewBundleStatsBySizeQuery("ORD-2024-118")
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for _, s := range stats.Sizes {
//	    fmt.Printf("%s: %d of %d cut pieces bundled\n", s.Size, s.BundledQty, s.CutQty)
//	}
type BundleStatsBySizeQuery struct {
	orderID string
	guard   guard.ConstructorGuard
}

func NewBundleStatsBySizeQuery(orderID string) (BundleStatsBySizeQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return BundleStatsBySizeQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	return BundleStatsBySizeQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q BundleStatsBySizeQuery) Validate() error {
	return q.guard.Validate(ErrBundleStatsBySizeQueryIsNotConstructed)
}

func (q BundleStatsBySizeQuery) OrderID() string { return q.orderID }

// BundleStatsBySizeResponse lists one row per size of the order's category, in
// category order, plus a totals row.
type BundleStatsBySizeResponse struct {
	OrderID      string
	StyleID      string
	CategoryName string
	Sizes        []services.SizeStat
	Total        services.SizeStat
}
