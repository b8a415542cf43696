package queries

import (
	"context"
	"database/sql"
	"errors"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/services"
	"garment/internal/pkg/errs"

	"gorm.io/gorm"
)

// CutLedger answers how much of an order was cut in one size.
type CutLedger interface {
	CutQuantity(ctx context.Context, orderID, size string) (int, error)
}

// BundleStatsBySizeQueryHandler joins order quantities, the cutting ledger's cut
// quantities and bundle sums per size against the order's size-category.
type BundleStatsBySizeQueryHandler struct {
	db      *gorm.DB
	cutting CutLedger
	stats   services.BundlingStats
}

func NewBundleStatsBySizeQueryHandler(db *gorm.DB, cutting CutLedger) BundleStatsBySizeQueryHandler {
	return BundleStatsBySizeQueryHandler{db: db, cutting: cutting, stats: services.NewBundlingStats()}
}

func (h BundleStatsBySizeQueryHandler) Handle(
	ctx context.Context,
	query BundleStatsBySizeQuery,
) (*BundleStatsBySizeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	resp := BundleStatsBySizeResponse{OrderID: query.OrderID()}

	var categoryID int64
	err := db.Raw(`
		SELECT o.style_id, o.size_category_id, c.name
		FROM orders o
		JOIN size_categories c ON c.id = o.size_category_id
		WHERE o.id = ?
	`, query.OrderID()).Row().Scan(&resp.StyleID, &categoryID, &resp.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return nil, err
	}

	sizes, err := h.categorySizes(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	ordered, err := sizeQuantities(db.Raw(`
		SELECT size, qty
		FROM order_size_quantities
		WHERE order_id = ?
	`, query.OrderID()))
	if err != nil {
		return nil, err
	}

	cut, err := h.cutQuantities(ctx, query.OrderID(), sizes)
	if err != nil {
		return nil, err
	}

	bundled, err := sizeQuantities(db.Raw(`
		SELECT ce.size, SUM(b.qty)::bigint
		FROM bundles b
		JOIN cutting_entries ce ON ce.id = b.cutting_entry_id
		WHERE ce.order_id = ?
		GROUP BY ce.size
	`, query.OrderID()))
	if err != nil {
		return nil, err
	}

	resp.Sizes = h.stats.Compute(sizes, ordered, cut, bundled)
	resp.Total = h.stats.Totals(resp.Sizes)
	return &resp, nil
}

func (h BundleStatsBySizeQueryHandler) categorySizes(ctx context.Context, categoryID int64) ([]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT size
		FROM size_category_sizes
		WHERE category_id = ?
		ORDER BY position
	`, categoryID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := make([]string, 0)
	for rows.Next() {
		var size string
		if err = rows.Scan(&size); err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, rows.Err()
}

func (h BundleStatsBySizeQueryHandler) cutQuantities(
	ctx context.Context,
	orderID string,
	sizes []string,
) (kernel.SizeQuantities, error) {
	items := make([]kernel.SizeQty, 0, len(sizes))
	for _, size := range sizes {
		qty, err := h.cutting.CutQuantity(ctx, orderID, size)
		if err != nil {
			return kernel.SizeQuantities{}, err
		}
		items = append(items, kernel.SizeQty{Size: size, Qty: qty})
	}
	return kernel.NewSizeQuantities(items...)
}

// sizeQuantities scans (size, qty) rows.
func sizeQuantities(stmt *gorm.DB) (kernel.SizeQuantities, error) {
	rows, err := stmt.Rows()
	if err != nil {
		return kernel.SizeQuantities{}, err
	}
	defer rows.Close()

	items := make([]kernel.SizeQty, 0)
	for rows.Next() {
		var item kernel.SizeQty
		if err = rows.Scan(&item.Size, &item.Qty); err != nil {
			return kernel.SizeQuantities{}, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return kernel.SizeQuantities{}, err
	}
	return kernel.NewSizeQuantities(items...)
}
