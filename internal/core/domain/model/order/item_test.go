package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		item, err := order.NewItem("i1", "Pizza", 2, 10)

		require.NoError(t, err)
		assert.Equal(t, "i1", item.ItemID())
		assert.Equal(t, "Pizza", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 10.0, item.UnitPrice(), 1e-9)
	})

	t.Run("free_item_is_allowed", func(t *testing.T) {
		_, err := order.NewItem("i2", "Sauce", 1, 0)

		require.NoError(t, err)
	})

	t.Run("invalid_items", func(t *testing.T) {
		testCases := []struct {
			name     string
			itemID   string
			itemName string
			quantity int
			price    float64
			sentinel error
		}{
			{"missing_item_id", "", "Pizza", 1, 10, errs.ErrValueIsRequired},
			{"missing_name", "i1", "", 1, 10, errs.ErrValueIsRequired},
			{"zero_quantity", "i1", "Pizza", 0, 10, errs.ErrValueIsInvalid},
			{"negative_quantity", "i1", "Pizza", -1, 10, errs.ErrValueIsInvalid},
			{"negative_price", "i1", "Pizza", 1, -0.01, errs.ErrValueIsInvalid},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewItem(tc.itemID, tc.itemName, tc.quantity, tc.price)
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.sentinel)
			})
		}
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var item order.Item

		require.Error(t, item.Validate())
	})
}

func TestNewDeliveryAddress(t *testing.T) {
	point, _ := kernel.NewGeoPoint(1, 2)

	t.Run("valid_address", func(t *testing.T) {
		address, err := order.NewDeliveryAddress(point, "Home")

		require.NoError(t, err)
		assert.Equal(t, "Home", address.Text())
		equal, pointErr := address.Point().IsEqual(point)
		require.NoError(t, pointErr)
		assert.True(t, equal)
	})

	t.Run("missing_text", func(t *testing.T) {
		_, err := order.NewDeliveryAddress(point, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_point", func(t *testing.T) {
		_, err := order.NewDeliveryAddress(kernel.GeoPoint{}, "Home")

		require.Error(t, err)
	})
}

func TestPaymentMethod_Validate(t *testing.T) {
	require.NoError(t, order.PaymentCashOnDelivery.Validate())
	require.NoError(t, order.PaymentOnline.Validate())

	err := order.PaymentMethod("credit_card").Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
