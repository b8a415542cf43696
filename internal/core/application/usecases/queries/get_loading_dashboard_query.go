package queries

import (
	"errors"
	"time"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/guard"
)

var (
	ErrGetLoadingDashboardQueryIsNotConstructed = errors.New(
		"GetLoadingDashboardQuery must be created via NewGetLoadingDashboardQuery constructor",
	)
)

// GetLoadingDashboardQuery reads every loading transaction of every size-category,
// split by where it sits in the approval flow.
type GetLoadingDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLoadingDashboardQuery() GetLoadingDashboardQuery {
	return GetLoadingDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLoadingDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadingDashboardQueryIsNotConstructed)
}

// LoadingSummary is one dashboard row.
type LoadingSummary struct {
	ID           kernel.UUID
	OrderID      string
	StyleID      string
	CategoryName string
	LineNo       int
	EmployeeID   string
	Status       string
	ApprovedBy   *string
	HandoverBy   *string
	TotalQty     int
	CreatedAt    time.Time
}

// GetLoadingDashboardResponse holds three disjoint lists, each oldest first.
type GetLoadingDashboardResponse struct {
	Completed       []LoadingSummary
	PendingApproval []LoadingSummary
	PendingHandover []LoadingSummary
}
