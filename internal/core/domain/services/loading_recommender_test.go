package services_test

import (
	"testing"
	"time"

	"garment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadingRecommender_Recommend(t *testing.T) {
	recommender := services.NewLoadingRecommender()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	last := &services.LastLoading{OrderID: "PO-1", StyleID: "ST-1", ColourCodes: []string{"NVY"}, CompletedAt: day}

	t.Run("no history", func(t *testing.T) {
		rec := recommender.Recommend(nil, []services.CuttingActivity{{OrderID: "PO-1", StyleID: "ST-1", PendingQty: 5}})
		assert.Equal(t, services.TierNoHistory, rec.Tier)
		assert.Nil(t, rec.Activity)
	})

	t.Run("same order first", func(t *testing.T) {
		rec := recommender.Recommend(last, []services.CuttingActivity{
			{OrderID: "PO-2", StyleID: "ST-1", ColourCode: "NVY", PendingQty: 50, LastCutAt: day.Add(time.Hour)},
			{OrderID: "PO-1", StyleID: "ST-1", ColourCode: "BLK", PendingQty: 10, LastCutAt: day},
		})

		assert.Equal(t, services.TierSameOrder, rec.Tier)
		require.NotNil(t, rec.Activity)
		assert.Equal(t, "PO-1", rec.Activity.OrderID)
		assert.Same(t, last, rec.Last)
	})

	t.Run("same style and colour when the order has no further cutting", func(t *testing.T) {
		rec := recommender.Recommend(last, []services.CuttingActivity{
			{OrderID: "PO-1", StyleID: "ST-1", ColourCode: "NVY", PendingQty: 0, LastCutAt: day},
			{OrderID: "PO-3", StyleID: "ST-1", ColourCode: "BLK", PendingQty: 30, LastCutAt: day.Add(2 * time.Hour)},
			{OrderID: "PO-2", StyleID: "ST-1", ColourCode: "NVY", PendingQty: 20, LastCutAt: day.Add(time.Hour)},
		})

		assert.Equal(t, services.TierSameStyleColour, rec.Tier)
		require.NotNil(t, rec.Activity)
		assert.Equal(t, "PO-2", rec.Activity.OrderID)
		assert.Equal(t, 20, rec.Activity.PendingQty)
	})

	t.Run("same style as last resort, most recent cut wins", func(t *testing.T) {
		rec := recommender.Recommend(last, []services.CuttingActivity{
			{OrderID: "PO-3", StyleID: "ST-1", ColourCode: "BLK", PendingQty: 30, LastCutAt: day},
			{OrderID: "PO-4", StyleID: "ST-1", ColourCode: "RED", PendingQty: 5, LastCutAt: day.Add(time.Hour)},
			{OrderID: "PO-5", StyleID: "ST-9", ColourCode: "NVY", PendingQty: 100, LastCutAt: day.Add(3 * time.Hour)},
		})

		assert.Equal(t, services.TierSameStyle, rec.Tier)
		require.NotNil(t, rec.Activity)
		assert.Equal(t, "PO-4", rec.Activity.OrderID)
	})

	t.Run("nothing pending", func(t *testing.T) {
		rec := recommender.Recommend(last, []services.CuttingActivity{
			{OrderID: "PO-5", StyleID: "ST-9", ColourCode: "NVY", PendingQty: 100},
		})

		assert.Equal(t, services.TierNoHistory, rec.Tier)
		assert.Same(t, last, rec.Last)
	})
}
