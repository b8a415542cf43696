package bundle_test

import (
	"testing"
	"time"

	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/cutting"
	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC)

func mustEntry(t *testing.T) *cutting.Entry {
	t.Helper()
	e, err := cutting.RestoreEntry(11, "PO-1", 2, "ST-1", "NVY", "M", 100)
	require.NoError(t, err)
	return e
}

func mustRange(t *testing.T, start, end int) kernel.SerialRange {
	t.Helper()
	r, err := kernel.NewSerialRange(start, end)
	require.NoError(t, err)
	return r
}

func mustBundle(t *testing.T, qty, start, end int) *bundle.Bundle {
	t.Helper()
	b, err := bundle.NewBundle(mustEntry(t), qty, mustRange(t, start, end), "E-CUT", now)
	require.NoError(t, err)
	require.NoError(t, b.AssignID(3))
	return b
}

func TestNewBundle(t *testing.T) {
	t.Run("should copy size, style and colour from the cutting entry", func(t *testing.T) {
		b, err := bundle.NewBundle(mustEntry(t), 60, mustRange(t, 1, 60), "E-CUT", now)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, int64(0), b.ID())
		assert.Equal(t, int64(11), b.CuttingID())
		assert.Equal(t, "ST-1", b.StyleID())
		assert.Equal(t, "NVY", b.ColourCode())
		assert.Equal(t, "M", b.Size())
		assert.Equal(t, 60, b.Qty())
		assert.Equal(t, "[1-60]", b.Serial().String())
		assert.Equal(t, "E-CUT", b.CreatedBy())
		assert.Equal(t, "E-CUT", b.LastChangedBy())
		assert.False(t, b.IsConsumed())
		assert.Nil(t, b.Consumption())
		assert.Equal(t, 0, b.FinalQty())
	})

	t.Run("should fail when qty differs from the range length", func(t *testing.T) {
		_, err := bundle.NewBundle(mustEntry(t), 50, mustRange(t, 55, 105), "E-CUT", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "qty 50 does not match range [55-105] of length 51")
	})

	t.Run("should require an actor", func(t *testing.T) {
		_, err := bundle.NewBundle(mustEntry(t), 1, mustRange(t, 1, 1), " ", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero value entry", func(t *testing.T) {
		_, err := bundle.NewBundle(nil, 1, mustRange(t, 1, 1), "E-CUT", now)
		require.ErrorIs(t, err, cutting.ErrEntryIsNotConstructed)
	})

	t.Run("should fail with zero value range", func(t *testing.T) {
		_, err := bundle.NewBundle(mustEntry(t), 1, kernel.SerialRange{}, "E-CUT", now)
		require.ErrorIs(t, err, kernel.ErrSerialRangeIsNotConstructed)
	})
}

func TestBundle_AssignID(t *testing.T) {
	b, err := bundle.NewBundle(mustEntry(t), 1, mustRange(t, 1, 1), "E-CUT", now)
	require.NoError(t, err)

	require.ErrorIs(t, b.AssignID(0), errs.ErrValueIsInvalid)
	require.NoError(t, b.AssignID(9))
	require.ErrorIs(t, b.AssignID(10), bundle.ErrIDAlreadyAssigned)
	assert.Equal(t, int64(9), b.ID())
}

func TestBundle_Resize(t *testing.T) {
	t.Run("should resize an available bundle", func(t *testing.T) {
		b := mustBundle(t, 60, 1, 60)
		later := now.Add(time.Hour)

		err := b.Resize(40, mustRange(t, 1, 40), "E-SUP", later)

		require.NoError(t, err)
		assert.Equal(t, 40, b.Qty())
		assert.Equal(t, 40, b.Serial().End())
		assert.Equal(t, "E-SUP", b.LastChangedBy())
		assert.Equal(t, "E-CUT", b.CreatedBy())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("should keep state on invalid shape", func(t *testing.T) {
		b := mustBundle(t, 60, 1, 60)

		err := b.Resize(41, mustRange(t, 1, 40), "E-SUP", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 60, b.Qty())
		assert.Equal(t, "E-CUT", b.LastChangedBy())
	})

	t.Run("should be locked once consumed", func(t *testing.T) {
		b := mustBundle(t, 60, 1, 60)
		require.NoError(t, b.Consume(kernel.NewUUID(), "MEN TOP", 0, "", "E-PRD", now))

		err := b.Resize(40, mustRange(t, 1, 40), "E-SUP", now)

		require.ErrorIs(t, err, errs.ErrLocked)
		assert.Equal(t, 60, b.Qty())
	})
}

func TestBundle_Consume(t *testing.T) {
	t.Run("should stamp consumption and compute final qty", func(t *testing.T) {
		b := mustBundle(t, 60, 1, 60)
		loadingID := kernel.NewUUID()

		err := b.Consume(loadingID, "MEN TOP", 2, " torn ", "E-PRD", now)

		require.NoError(t, err)
		c := b.Consumption()
		require.NotNil(t, c)
		assert.True(t, c.LoadingID.IsEqual(loadingID))
		assert.Equal(t, "MEN TOP", c.CategoryName)
		assert.Equal(t, 2, c.MinusQty)
		assert.Equal(t, "torn", c.MinusReason)
		assert.Equal(t, 58, c.FinalQty)
		assert.Equal(t, 58, b.FinalQty())
		assert.Equal(t, "E-PRD", b.LastChangedBy())
	})

	t.Run("should floor final qty at zero", func(t *testing.T) {
		b := mustBundle(t, 5, 1, 5)

		require.NoError(t, b.Consume(kernel.NewUUID(), "MEN TOP", 9, "lost", "E-PRD", now))

		assert.Equal(t, 0, b.FinalQty())
	})

	t.Run("should reject negative minus qty", func(t *testing.T) {
		b := mustBundle(t, 5, 1, 5)

		err := b.Consume(kernel.NewUUID(), "MEN TOP", -1, "", "E-PRD", now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.False(t, b.IsConsumed())
	})

	t.Run("should refuse a second consumption", func(t *testing.T) {
		b := mustBundle(t, 5, 1, 5)
		require.NoError(t, b.Consume(kernel.NewUUID(), "MEN TOP", 0, "", "E-PRD", now))

		err := b.Consume(kernel.NewUUID(), "MEN TOP", 0, "", "E-PRD", now)

		require.ErrorIs(t, err, errs.ErrLocked)
	})

	t.Run("should require a constructed loading id", func(t *testing.T) {
		b := mustBundle(t, 5, 1, 5)

		err := b.Consume(kernel.UUID{}, "MEN TOP", 0, "", "E-PRD", now)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("consumption copy does not leak", func(t *testing.T) {
		b := mustBundle(t, 5, 1, 5)
		require.NoError(t, b.Consume(kernel.NewUUID(), "MEN TOP", 1, "", "E-PRD", now))

		b.Consumption().FinalQty = 100

		assert.Equal(t, 4, b.FinalQty())
	})
}

func TestBundle_Release(t *testing.T) {
	b := mustBundle(t, 60, 1, 60)
	require.NoError(t, b.Consume(kernel.NewUUID(), "MEN TOP", 3, "stain", "E-PRD", now))

	b.Release("E-SUP", now)

	assert.False(t, b.IsConsumed())
	assert.Nil(t, b.Consumption())
	assert.Equal(t, 0, b.FinalQty())
	assert.Equal(t, "E-SUP", b.LastChangedBy())
	require.NoError(t, b.Resize(10, mustRange(t, 1, 10), "E-SUP", now), "released bundle is editable again")
}

func TestBundle_EnsureDeletable(t *testing.T) {
	t.Run("available and unused", func(t *testing.T) {
		require.NoError(t, mustBundle(t, 5, 1, 5).EnsureDeletable(false))
	})

	t.Run("used by operation records", func(t *testing.T) {
		err := mustBundle(t, 5, 1, 5).EnsureDeletable(true)
		require.ErrorIs(t, err, errs.ErrLocked)
		assert.Contains(t, err.Error(), "operation records")
	})

	t.Run("consumed", func(t *testing.T) {
		b := mustBundle(t, 5, 1, 5)
		require.NoError(t, b.Consume(kernel.NewUUID(), "MEN TOP", 0, "", "E-PRD", now))

		require.ErrorIs(t, b.EnsureDeletable(false), errs.ErrLocked)
	})
}

func TestRestoreBundle(t *testing.T) {
	space, err := kernel.NewSerialSpace("ST-1", "NVY")
	require.NoError(t, err)
	loadingID := kernel.NewUUID()

	b, err := bundle.RestoreBundle(4, 11, space, "M", 10, mustRange(t, 11, 20),
		&bundle.Consumption{LoadingID: loadingID, CategoryName: "MEN TOP", MinusQty: 1, FinalQty: 9},
		"E-CUT", "E-PRD", now, now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), b.ID())
	assert.True(t, b.IsConsumed())
	assert.Equal(t, 9, b.FinalQty())

	_, err = bundle.RestoreBundle(4, 11, space, "M", 9, mustRange(t, 11, 20), nil, "E-CUT", "E-CUT", now, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero *bundle.Bundle
	require.ErrorIs(t, zero.Validate(), bundle.ErrBundleIsNotConstructed)
}
