package services_test

import (
	"testing"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizeQty(t *testing.T, items ...kernel.SizeQty) kernel.SizeQuantities {
	t.Helper()
	q, err := kernel.NewSizeQuantities(items...)
	require.NoError(t, err)
	return q
}

func TestBundlingStats_Compute(t *testing.T) {
	stats := services.NewBundlingStats()
	sizes := []string{"S", "M", "L"}

	got := stats.Compute(sizes,
		sizeQty(t, kernel.SizeQty{Size: "S", Qty: 300}, kernel.SizeQty{Size: "M", Qty: 120}),
		sizeQty(t, kernel.SizeQty{Size: "M", Qty: 100}, kernel.SizeQty{Size: "S", Qty: 200}),
		sizeQty(t, kernel.SizeQty{Size: "M", Qty: 100}, kernel.SizeQty{Size: "S", Qty: 1}),
	)

	require.Len(t, got, 3)

	assert.Equal(t, "S", got[0].Size)
	assert.Equal(t, 199, got[0].AvailableForBundling)
	assert.Equal(t, "66.67", got[0].CutPercent.StringFixed(2))
	assert.Equal(t, "0.50", got[0].BundledPercent.StringFixed(2))

	assert.Equal(t, "M", got[1].Size)
	assert.Equal(t, 0, got[1].AvailableForBundling)
	assert.Equal(t, "83.33", got[1].CutPercent.StringFixed(2))
	assert.Equal(t, "100.00", got[1].BundledPercent.StringFixed(2))

	assert.Equal(t, "L", got[2].Size)
	assert.True(t, got[2].CutPercent.IsZero(), "no order quantity")
	assert.True(t, got[2].BundledPercent.IsZero(), "no cut quantity")

	total := stats.Totals(got)
	assert.Equal(t, "TOTAL", total.Size)
	assert.Equal(t, 420, total.OrderQty)
	assert.Equal(t, 300, total.CutQty)
	assert.Equal(t, 101, total.BundledQty)
	assert.Equal(t, "71.43", total.CutPercent.StringFixed(2))
	assert.Equal(t, "33.67", total.BundledPercent.StringFixed(2))
}
