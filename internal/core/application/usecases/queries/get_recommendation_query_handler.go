package queries

import (
	"context"
	"database/sql"
	"errors"

	"garment/internal/core/domain/model/loading"
	"garment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRecommendationQueryHandler loads the line's last completed loading and the
// pending cutting activity around it, then lets services.LoadingRecommender pick.
type GetRecommendationQueryHandler struct {
	db          *gorm.DB
	recommender services.LoadingRecommender
}

func NewGetRecommendationQueryHandler(db *gorm.DB) GetRecommendationQueryHandler {
	return GetRecommendationQueryHandler{db: db, recommender: services.NewLoadingRecommender()}
}

func (h GetRecommendationQueryHandler) Handle(
	ctx context.Context,
	query GetRecommendationQuery,
) (*GetRecommendationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	last, err := h.lastCompleted(ctx, query.LineNo())
	if err != nil {
		return nil, err
	}

	var activities []services.CuttingActivity
	if last != nil {
		if activities, err = h.pendingActivity(ctx, last); err != nil {
			return nil, err
		}
	}

	rec := h.recommender.Recommend(last, activities)
	return &GetRecommendationResponse{
		LineNo:   query.LineNo(),
		Tier:     rec.Tier,
		Last:     rec.Last,
		Activity: rec.Activity,
	}, nil
}

// lastCompleted returns nil when the line has never completed a loading. A
// handed-over variant style replaces the order's style.
func (h GetRecommendationQueryHandler) lastCompleted(ctx context.Context, lineNo int) (*services.LastLoading, error) {
	db := h.db.WithContext(ctx)

	var id uuid.UUID
	var last services.LastLoading
	err := db.Raw(`
		SELECT
			id,
			order_id,
			COALESCE(handover_style_id, style_id),
			handover_date
		FROM loading_transactions
		WHERE line_no = ? AND status = ?
		ORDER BY handover_date DESC, created_at DESC
		LIMIT 1
	`, lineNo, loading.Completed.String()).Row().Scan(&id, &last.OrderID, &last.StyleID, &last.CompletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	// Colours come from the bundles the loading consumed, or from everything cut
	// for the order when the loading carried quantities only.
	rows, err := db.Raw(`
		SELECT DISTINCT colour_code FROM bundles WHERE loading_tx_id = ?
		UNION
		SELECT DISTINCT colour_code FROM cutting_entries
		WHERE order_id = ? AND NOT EXISTS (SELECT 1 FROM bundles WHERE loading_tx_id = ?)
		ORDER BY 1
	`, id, last.OrderID, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	last.ColourCodes = make([]string, 0)
	for rows.Next() {
		var colour string
		if err = rows.Scan(&colour); err != nil {
			return nil, err
		}
		last.ColourCodes = append(last.ColourCodes, colour)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return &last, nil
}

// pendingActivity lists cut stock per order and colour that is not yet consumed
// by a loading, for the last order and for every order of the last style.
func (h GetRecommendationQueryHandler) pendingActivity(
	ctx context.Context,
	last *services.LastLoading,
) ([]services.CuttingActivity, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		WITH cut AS (
			SELECT order_id, style_id, colour_code, SUM(qty)::bigint AS cut_qty, MAX(cut_at) AS last_cut_at
			FROM cutting_entries
			WHERE order_id = ? OR style_id = ?
			GROUP BY order_id, style_id, colour_code
		),
		loaded AS (
			SELECT ce.order_id, ce.colour_code, SUM(b.qty)::bigint AS loaded_qty
			FROM bundles b
			JOIN cutting_entries ce ON ce.id = b.cutting_entry_id
			WHERE b.loading_tx_id IS NOT NULL
			GROUP BY ce.order_id, ce.colour_code
		)
		SELECT
			cut.order_id,
			cut.style_id,
			cut.colour_code,
			cut.cut_qty - COALESCE(loaded.loaded_qty, 0),
			cut.last_cut_at
		FROM cut
		LEFT JOIN loaded ON loaded.order_id = cut.order_id AND loaded.colour_code = cut.colour_code
		ORDER BY cut.order_id, cut.colour_code
	`, last.OrderID, last.StyleID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]services.CuttingActivity, 0)
	for rows.Next() {
		var a services.CuttingActivity
		if err = rows.Scan(&a.OrderID, &a.StyleID, &a.ColourCode, &a.PendingQty, &a.LastCutAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
