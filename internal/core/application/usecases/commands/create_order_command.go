package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place a new order.
// Item and address value objects arrive already constructed; the command
// re-checks only what it owns.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("cust-1", "rest-1", items, address, nil,
//	    order.PaymentCashOnDelivery)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      string
	restaurantID    string
	items           []order.Item
	deliveryAddress order.DeliveryAddress
	totalAmount     *float64
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// that the participant ids are present, at least one constructed item is
// given, and the address and payment method are valid.
func NewCreateOrderCommand(
	customerID string,
	restaurantID string,
	items []order.Item,
	deliveryAddress order.DeliveryAddress,
	totalAmount *float64,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setTotalAmount(totalAmount),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identity.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// RestaurantID returns the fulfilling restaurant's identity.
func (c CreateOrderCommand) RestaurantID() string {
	return c.restaurantID
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// DeliveryAddress returns the destination.
func (c CreateOrderCommand) DeliveryAddress() order.DeliveryAddress {
	return c.deliveryAddress
}

// TotalAmount returns the caller-supplied total, or nil.
func (c CreateOrderCommand) TotalAmount() *float64 {
	if c.totalAmount == nil {
		return nil
	}
	total := *c.totalAmount
	return &total
}

// PaymentMethod returns how the order is settled.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer_id")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID string) error {
	if restaurantID == "" {
		return errs.NewValueIsRequiredError("restaurant_id")
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress order.DeliveryAddress) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount *float64) error {
	if totalAmount != nil && *totalAmount < 0 {
		return errs.NewValueIsInvalidError("total_amount")
	}
	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	c.paymentMethod = paymentMethod
	return nil
}
