package order_test

import (
	"testing"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/order"
	"garment/internal/core/domain/model/sizecategory"
	"garment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreOrder(t *testing.T) {
	category, err := sizecategory.RestoreSizeCategory(1, "MEN TOP", []string{"S", "M", "L"})
	require.NoError(t, err)

	t.Run("should restore order and reorder sizes by category", func(t *testing.T) {
		qty, err := kernel.NewSizeQuantities(kernel.SizeQty{Size: "L", Qty: 30}, kernel.SizeQty{Size: "S", Qty: 10})
		require.NoError(t, err)

		o, err := order.RestoreOrder("PO-1", "ST-1", category, qty)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "PO-1", o.ID())
		assert.Equal(t, "ST-1", o.StyleID())
		assert.Equal(t, int64(1), o.Category().ID())
		assert.Equal(t, []string{"S", "L"}, o.Quantities().Sizes())
		assert.Equal(t, 40, o.Quantities().Total())
	})

	t.Run("should fail with size outside the category", func(t *testing.T) {
		qty, err := kernel.NewSizeQuantities(kernel.SizeQty{Size: "XXL", Qty: 1})
		require.NoError(t, err)

		_, err = order.RestoreOrder("PO-1", "ST-1", category, qty)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should join missing field errors", func(t *testing.T) {
		_, err := order.RestoreOrder("", "", nil, kernel.SizeQuantities{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "styleId")
		require.ErrorIs(t, err, sizecategory.ErrSizeCategoryIsNotConstructed)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
