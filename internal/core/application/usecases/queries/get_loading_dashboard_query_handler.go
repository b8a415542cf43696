package queries

import (
	"context"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/loading"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetLoadingDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadingDashboardQueryHandler(db *gorm.DB) GetLoadingDashboardQueryHandler {
	return GetLoadingDashboardQueryHandler{db: db}
}

// Handle reads all transactions in creation order and buckets them by status:
// COMPLETED, PENDING_APPROVAL, and APPROVED awaiting handover.
func (h GetLoadingDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetLoadingDashboardQuery,
) (*GetLoadingDashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			lt.id,
			lt.order_id,
			lt.style_id,
			lt.category_name,
			lt.line_no,
			lt.employee_id,
			lt.status,
			lt.approved_by,
			lt.handover_by,
			COALESCE(SUM(q.qty), 0)::bigint,
			lt.created_at
		FROM loading_transactions lt
		LEFT JOIN loading_transaction_quantities q ON q.loading_tx_id = lt.id
		GROUP BY lt.id
		ORDER BY lt.created_at, lt.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dashboard := GetLoadingDashboardResponse{
		Completed:       make([]LoadingSummary, 0),
		PendingApproval: make([]LoadingSummary, 0),
		PendingHandover: make([]LoadingSummary, 0),
	}
	for rows.Next() {
		var s LoadingSummary
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&s.OrderID,
			&s.StyleID,
			&s.CategoryName,
			&s.LineNo,
			&s.EmployeeID,
			&s.Status,
			&s.ApprovedBy,
			&s.HandoverBy,
			&s.TotalQty,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		s.ID = kernel.UUIDFromGoogle(id)

		status, statusErr := loading.ParseStatus(s.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		switch status {
		case loading.Completed:
			dashboard.Completed = append(dashboard.Completed, s)
		case loading.Approved:
			dashboard.PendingHandover = append(dashboard.PendingHandover, s)
		default:
			dashboard.PendingApproval = append(dashboard.PendingApproval, s)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
