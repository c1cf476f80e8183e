package order

import (
	"fooddelivery/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order.
type PaymentMethod string

const (
	// PaymentCashOnDelivery settles in cash with the rider.
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"

	// PaymentOnline settles through an external payment provider before
	// the order reaches this system. Payment processing itself is out of
	// scope; the method is carried as order metadata only.
	PaymentOnline PaymentMethod = "online"
)

// Validate checks membership in the payment method enum.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCashOnDelivery, PaymentOnline:
		return nil
	default:
		return errs.NewValueIsInvalidError("payment_method")
	}
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	return string(m)
}
