package queries

import (
	"context"

	"garment/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListAvailableBundlesQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableBundlesQueryHandler(db *gorm.DB) ListAvailableBundlesQueryHandler {
	return ListAvailableBundlesQueryHandler{db: db}
}

// Handle returns unconsumed bundles in category size order, then by colour and
// starting number.
// An unknown order is an ObjectNotFoundError.
func (h ListAvailableBundlesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableBundlesQuery,
) ([]AvailableBundle, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID()).
		Row().Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	rows, err := db.Raw(`
		SELECT
			b.id,
			b.cutting_entry_id,
			ce.lay_no,
			b.style_id,
			b.colour_code,
			b.size,
			b.qty,
			b.starting_no,
			b.ending_no
		FROM bundles b
		JOIN cutting_entries ce ON ce.id = b.cutting_entry_id
		JOIN orders o ON o.id = ce.order_id
		LEFT JOIN size_category_sizes s ON s.category_id = o.size_category_id AND s.size = b.size
		WHERE ce.order_id = ? AND b.loading_tx_id IS NULL
		ORDER BY s.position, b.colour_code, b.starting_no
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bundles := make([]AvailableBundle, 0)
	for rows.Next() {
		var b AvailableBundle
		err = rows.Scan(
			&b.ID,
			&b.CuttingID,
			&b.LayNo,
			&b.StyleID,
			&b.ColourCode,
			&b.Size,
			&b.Qty,
			&b.StartingNo,
			&b.EndingNo,
		)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bundles, nil
}
