package queries

import (
	"context"

	"gorm.io/gorm"
)

type NextStartingNumberQueryHandler struct {
	db *gorm.DB
}

func NewNextStartingNumberQueryHandler(db *gorm.DB) NextStartingNumberQueryHandler {
	return NextStartingNumberQueryHandler{db: db}
}

// Handle returns max(ending_no) + 1 over the serial space, or 1 when it is empty.
// The number is advisory; CreateBundle re-checks overlap under the space lock.
func (h NextStartingNumberQueryHandler) Handle(ctx context.Context, query NextStartingNumberQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var next int
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(ending_no), 0) + 1
		FROM bundles
		WHERE style_id = ? AND colour_code = ?
	`, query.Space().StyleID(), query.Space().ColourCode()).Row().Scan(&next)
	if err != nil {
		return 0, err
	}
	return next, nil
}
