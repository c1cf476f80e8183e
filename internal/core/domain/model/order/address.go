package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrDeliveryAddressIsNotConstructed is returned when validating a
// zero-value DeliveryAddress.
var ErrDeliveryAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery address must be created via NewDeliveryAddress constructor")

// DeliveryAddress is the immutable destination snapshot taken when an order
// is created: validated coordinates plus a free-text description for the
// rider. It never changes after creation.
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	point kernel.GeoPoint
	text  string
	guard guard.ConstructorGuard
}

// NewDeliveryAddress creates a delivery address. The point must be a
// properly constructed GeoPoint and the description must not be empty.
func NewDeliveryAddress(point kernel.GeoPoint, text string) (DeliveryAddress, error) {
	address := DeliveryAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setPoint(point),
		address.setText(text),
	); err != nil {
		return DeliveryAddress{}, err
	}

	return address, nil
}

// Validate checks that the address was created through NewDeliveryAddress.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// Point returns the destination coordinates.
func (a DeliveryAddress) Point() kernel.GeoPoint {
	return a.point
}

// Text returns the free-text address description.
func (a DeliveryAddress) Text() string {
	return a.text
}

func (a *DeliveryAddress) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	a.point = point
	return nil
}

func (a *DeliveryAddress) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("address_text")
	}
	a.text = text
	return nil
}
