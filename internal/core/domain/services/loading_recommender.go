package services

import (
	"slices"
	"time"
)

// RecommendationTier tells which locality rule produced a recommendation.
type RecommendationTier string

const (
	TierSameOrder       RecommendationTier = "SAME_ORDER"
	TierSameStyleColour RecommendationTier = "SAME_STYLE_COLOUR"
	TierSameStyle       RecommendationTier = "SAME_STYLE"
	TierNoHistory       RecommendationTier = "NO_HISTORY"
)

// LastLoading describes the most recent completed loading of a line.
type LastLoading struct {
	OrderID     string
	StyleID     string
	ColourCodes []string
	CompletedAt time.Time
}

// CuttingActivity is cut stock of one order and colour that lines have not loaded yet.
type CuttingActivity struct {
	OrderID    string
	StyleID    string
	ColourCode string
	PendingQty int
	LastCutAt  time.Time
}

type Recommendation struct {
	Tier     RecommendationTier
	Last     *LastLoading
	Activity *CuttingActivity
}

// LoadingRecommender applies the locality heuristic: reloading the same order is
// cheapest, then the same style and colour of another order, then the same style.
type LoadingRecommender struct{}

func NewLoadingRecommender() LoadingRecommender {
	return LoadingRecommender{}
}

// Recommend returns the first tier with pending cutting activity. Inside a tier the
// most recently cut activity wins. A nil last loading yields TierNoHistory.
func (LoadingRecommender) Recommend(last *LastLoading, activities []CuttingActivity) Recommendation {
	if last == nil {
		return Recommendation{Tier: TierNoHistory}
	}

	tiers := []struct {
		tier  RecommendationTier
		match func(CuttingActivity) bool
	}{
		{TierSameOrder, func(a CuttingActivity) bool {
			return a.OrderID == last.OrderID
		}},
		{TierSameStyleColour, func(a CuttingActivity) bool {
			return a.OrderID != last.OrderID && a.StyleID == last.StyleID && slices.Contains(last.ColourCodes, a.ColourCode)
		}},
		{TierSameStyle, func(a CuttingActivity) bool {
			return a.StyleID == last.StyleID
		}},
	}

	for _, tier := range tiers {
		var best *CuttingActivity
		for i := range activities {
			a := activities[i]
			if a.PendingQty <= 0 || !tier.match(a) {
				continue
			}
			if best == nil || newer(a, *best) {
				best = &a
			}
		}
		if best != nil {
			return Recommendation{Tier: tier.tier, Last: last, Activity: best}
		}
	}

	return Recommendation{Tier: TierNoHistory, Last: last}
}

func newer(a, b CuttingActivity) bool {
	if !a.LastCutAt.Equal(b.LastCutAt) {
		return a.LastCutAt.After(b.LastCutAt)
	}
	if a.OrderID != b.OrderID {
		return a.OrderID < b.OrderID
	}
	return a.ColourCode < b.ColourCode
}
