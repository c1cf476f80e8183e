package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("i1", "Pizza", 2, 10)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress(point, "Home")
	require.NoError(t, err)
	return address
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("cust-1", "rest-1",
			testItems(t), testAddress(t), nil, order.PaymentCashOnDelivery)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "cust-1", cmd.CustomerID())
		assert.Equal(t, "rest-1", cmd.RestaurantID())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("missing_customer", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "rest-1",
			testItems(t), testAddress(t), nil, order.PaymentCashOnDelivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("cust-1", "rest-1",
			nil, testAddress(t), nil, order.PaymentCashOnDelivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
