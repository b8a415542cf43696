package queries

import (
	"errors"

	"garment/internal/core/domain/services"
	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

var (
	ErrGetRecommendationQueryIsNotConstructed = errors.New(
		"GetRecommendationQuery must be created via NewGetRecommendationQuery constructor",
	)
)

// GetRecommendationQuery asks which order a sewing line should load next.
type GetRecommendationQuery struct {
	lineNo int
	guard  guard.ConstructorGuard
}

func NewGetRecommendationQuery(lineNo int) (GetRecommendationQuery, error) {
	if lineNo <= 0 {
		return GetRecommendationQuery{}, errs.NewValueIsOutOfRangeError("lineNo", lineNo, 1, "unbounded")
	}
	return GetRecommendationQuery{lineNo: lineNo, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecommendationQuery) Validate() error {
	return q.guard.Validate(ErrGetRecommendationQueryIsNotConstructed)
}

func (q GetRecommendationQuery) LineNo() int { return q.lineNo }

// GetRecommendationResponse carries the matched tier. With TierNoHistory the
// activity is nil and the operator picks an order manually.
type GetRecommendationResponse struct {
	LineNo   int
	Tier     services.RecommendationTier
	Last     *services.LastLoading
	Activity *services.CuttingActivity
}

// HasHistory reports whether a tier matched.
func (r GetRecommendationResponse) HasHistory() bool {
	return r.Tier != services.TierNoHistory
}
