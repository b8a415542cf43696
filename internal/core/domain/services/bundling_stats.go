package services

import (
	"garment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// SizeStat is the bundling progress of one size of an order.
type SizeStat struct {
	Size                 string
	OrderQty             int
	CutQty               int
	BundledQty           int
	AvailableForBundling int
	// CutPercent is CutQty over OrderQty, BundledPercent is BundledQty over CutQty.
	CutPercent     decimal.Decimal
	BundledPercent decimal.Decimal
}

// BundlingStats builds the per-size bundling view.
type BundlingStats struct{}

func NewBundlingStats() BundlingStats {
	return BundlingStats{}
}

// Compute returns one row per category size, in category order. Percentages are
// rounded half-up to 2 decimals; a zero denominator yields 0.
func (BundlingStats) Compute(sizes []string, orderQty, cutQty, bundledQty kernel.SizeQuantities) []SizeStat {
	out := make([]SizeStat, 0, len(sizes))
	for _, size := range sizes {
		cut := cutQty.Get(size)
		bundled := bundledQty.Get(size)
		ordered := orderQty.Get(size)
		out = append(out, SizeStat{
			Size:                 size,
			OrderQty:             ordered,
			CutQty:               cut,
			BundledQty:           bundled,
			AvailableForBundling: cut - bundled,
			CutPercent:           percent(cut, ordered),
			BundledPercent:       percent(bundled, cut),
		})
	}
	return out
}

// Totals sums a stats slice into a single row named "TOTAL".
func (BundlingStats) Totals(stats []SizeStat) SizeStat {
	total := SizeStat{Size: "TOTAL"}
	for _, s := range stats {
		total.OrderQty += s.OrderQty
		total.CutQty += s.CutQty
		total.BundledQty += s.BundledQty
		total.AvailableForBundling += s.AvailableForBundling
	}
	total.CutPercent = percent(total.CutQty, total.OrderQty)
	total.BundledPercent = percent(total.BundledQty, total.CutQty)
	return total
}

func percent(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(whole)), 2)
}
