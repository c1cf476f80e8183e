package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem("i1", "Pizza", 2, 10)
	require.NoError(t, err)
	return item
}

func mustAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress(point, "Home")
	require.NoError(t, err)
	return address
}

func mustOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "cust-1", "rest-1",
		[]order.Item{mustItem(t)}, mustAddress(t), nil, order.PaymentCashOnDelivery)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order_starts_pending_and_unassigned", func(t *testing.T) {
		total := 20.0
		o, err := order.NewOrder(kernel.NewUUID(), "cust-1", "rest-1",
			[]order.Item{mustItem(t)}, mustAddress(t), &total, order.PaymentOnline)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Rider())
		assert.Nil(t, o.TrackingLink())
		assert.Equal(t, "cust-1", o.CustomerID())
		assert.Equal(t, "rest-1", o.RestaurantID())
		require.NotNil(t, o.TotalAmount())
		assert.InDelta(t, 20.0, *o.TotalAmount(), 1e-9)
		assert.Len(t, o.Items(), 1)
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("nil_total_is_allowed", func(t *testing.T) {
		o := mustOrder(t)

		assert.Nil(t, o.TotalAmount())
	})

	t.Run("invalid_orders", func(t *testing.T) {
		item := mustItem(t)
		address := mustAddress(t)
		negative := -1.0

		testCases := []struct {
			name         string
			customerID   string
			restaurantID string
			items        []order.Item
			address      order.DeliveryAddress
			total        *float64
			payment      order.PaymentMethod
			sentinel     error
		}{
			{"missing_customer", "", "rest-1", []order.Item{item}, address, nil, order.PaymentOnline, errs.ErrValueIsRequired},
			{"missing_restaurant", "cust-1", "", []order.Item{item}, address, nil, order.PaymentOnline, errs.ErrValueIsRequired},
			{"empty_items", "cust-1", "rest-1", nil, address, nil, order.PaymentOnline, errs.ErrValueIsRequired},
			{"unconstructed_item", "cust-1", "rest-1", []order.Item{{}}, address, nil, order.PaymentOnline, errs.ErrValueIsRequired},
			{"unconstructed_address", "cust-1", "rest-1", []order.Item{item}, order.DeliveryAddress{}, nil, order.PaymentOnline, errs.ErrValueIsRequired},
			{"negative_total", "cust-1", "rest-1", []order.Item{item}, address, &negative, order.PaymentOnline, errs.ErrValueIsInvalid},
			{"unknown_payment", "cust-1", "rest-1", []order.Item{item}, address, nil, "cheque", errs.ErrValueIsInvalid},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(kernel.NewUUID(), tc.customerID, tc.restaurantID,
					tc.items, tc.address, tc.total, tc.payment)
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.sentinel)
			})
		}
	})

	t.Run("items_accessor_returns_a_copy", func(t *testing.T) {
		o := mustOrder(t)

		snapshot := o.Items()
		snapshot[0] = order.Item{}

		require.NoError(t, o.Items()[0].Validate())
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	base := func(t *testing.T) *order.Order {
		t.Helper()
		return mustOrder(t)
	}

	t.Run("restores_status_rider_and_link", func(t *testing.T) {
		src := base(t)
		rider := "rider-1"
		link := "https://track.example/abc"

		o, err := order.RestoreOrder(src.ID(), src.CustomerID(), src.RestaurantID(),
			src.Items(), src.DeliveryAddress(), nil, src.PaymentMethod(),
			order.StatusOutForDelivery, &rider, &link, src.CreatedAt(), src.UpdatedAt())

		require.NoError(t, err)
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
		require.NotNil(t, o.Rider())
		assert.Equal(t, "rider-1", *o.Rider())
		require.NotNil(t, o.TrackingLink())
		assert.Equal(t, link, *o.TrackingLink())
		assert.Equal(t, src.CreatedAt(), o.CreatedAt())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		src := base(t)

		_, err := order.RestoreOrder(src.ID(), src.CustomerID(), src.RestaurantID(),
			src.Items(), src.DeliveryAddress(), nil, src.PaymentMethod(),
			"shipped", nil, nil, src.CreatedAt(), src.UpdatedAt())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStatusNotAllowed)
	})

	t.Run("rejects_empty_rider_id", func(t *testing.T) {
		src := base(t)
		empty := ""

		_, err := order.RestoreOrder(src.ID(), src.CustomerID(), src.RestaurantID(),
			src.Items(), src.DeliveryAddress(), nil, src.PaymentMethod(),
			order.StatusAccepted, &empty, nil, src.CreatedAt(), src.UpdatedAt())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_AcceptBy(t *testing.T) {
	t.Run("first_claim_binds_rider_and_advances_pending", func(t *testing.T) {
		o := mustOrder(t)

		require.NoError(t, o.AcceptBy("rider-1"))

		require.NotNil(t, o.Rider())
		assert.Equal(t, "rider-1", *o.Rider())
		assert.Equal(t, order.StatusAccepted, o.Status())
	})

	t.Run("claim_preserves_restaurant_progress", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusPreparing, order.StatusReady} {
			o := mustOrder(t)
			require.NoError(t, o.ChangeStatus(status, nil))

			require.NoError(t, o.AcceptBy("rider-1"))

			assert.Equal(t, status, o.Status(), "status %q should survive the claim", status)
		}
	})

	t.Run("same_rider_claim_is_idempotent", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.AcceptBy("rider-1"))
		updatedAt := o.UpdatedAt()

		require.NoError(t, o.AcceptBy("rider-1"))

		assert.Equal(t, "rider-1", *o.Rider())
		assert.Equal(t, order.StatusAccepted, o.Status())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("different_rider_claim_is_rejected", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.AcceptBy("rider-1"))

		err := o.AcceptBy("rider-2")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrOrderAlreadyAssigned)
		assert.Equal(t, "rider-1", *o.Rider())
	})

	t.Run("empty_rider_id_is_rejected", func(t *testing.T) {
		o := mustOrder(t)

		err := o.AcceptBy("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o.Rider())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("any_member_is_reachable", func(t *testing.T) {
		o := mustOrder(t)

		require.NoError(t, o.ChangeStatus(order.StatusDelivered, nil))
		assert.Equal(t, order.StatusDelivered, o.Status())

		// Membership is the only gate: moving back out of a terminal
		// status is allowed.
		require.NoError(t, o.ChangeStatus(order.StatusPending, nil))
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("unknown_status_is_rejected", func(t *testing.T) {
		o := mustOrder(t)

		err := o.ChangeStatus("shipped", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStatusNotAllowed)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("tracking_link_requires_rider", func(t *testing.T) {
		o := mustOrder(t)
		link := "https://track.example/abc"

		err := o.ChangeStatus(order.StatusOutForDelivery, &link)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.TrackingLink())
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("tracking_link_stored_with_status", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.AcceptBy("rider-1"))
		link := "https://track.example/abc"

		require.NoError(t, o.ChangeStatus(order.StatusOutForDelivery, &link))

		require.NotNil(t, o.TrackingLink())
		assert.Equal(t, link, *o.TrackingLink())
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
	})

	t.Run("nil_link_keeps_existing_link", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.AcceptBy("rider-1"))
		link := "https://track.example/abc"
		require.NoError(t, o.ChangeStatus(order.StatusOutForDelivery, &link))

		require.NoError(t, o.ChangeStatus(order.StatusDelivered, nil))

		require.NotNil(t, o.TrackingLink())
		assert.Equal(t, link, *o.TrackingLink())
	})

	t.Run("empty_link_is_rejected", func(t *testing.T) {
		o := mustOrder(t)
		require.NoError(t, o.AcceptBy("rider-1"))
		empty := ""

		err := o.ChangeStatus(order.StatusOutForDelivery, &empty)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	first := mustOrder(t)
	second := mustOrder(t)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
}
