package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for a customer's delivery request. It manages
// the lifecycle from creation through rider assignment to completion.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and non-empty participant ids
//   - Must have at least one valid line item
//   - Items and delivery address never change after creation
//   - At most one rider is ever bound to the order; once set, the rider
//     id can never change to a different rider
//   - Status is always a member of the fixed status enum
//   - The live tracking link can only be set once a rider is assigned
//
// The struct uses private fields and exposes validated mutation methods;
// construct instances only through NewOrder or RestoreOrder.
type Order struct {
	// id is the server-assigned unique identifier
	id kernel.UUID

	// customerID and restaurantID reference identities managed by the
	// external auth gateway; they are opaque non-empty strings here
	customerID   string
	restaurantID string

	// riderID is the assigned rider (nil while unassigned)
	riderID *string

	// items is the immutable line item snapshot
	items []Item

	// deliveryAddress is the immutable destination snapshot
	deliveryAddress DeliveryAddress

	// totalAmount is caller-supplied; the engine never computes it
	totalAmount *float64

	paymentMethod PaymentMethod
	status        Status

	// trackingLink is an optional external live-tracking URL
	trackingLink *string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in pending status with no rider assigned.
//
// Validation failures are joined and returned together: empty customer or
// restaurant id, empty item list, invalid items, unconstructed address,
// negative total, or an unknown payment method.
//
// Example:
//
//	item, _ := order.NewItem("i1", "Pizza", 2, 10)
//	point, _ := kernel.NewGeoPoint(1, 2)
//	address, _ := order.NewDeliveryAddress(point, "Home")
//	o, err := order.NewOrder(kernel.NewUUID(), "cust-1", "rest-1",
//	    []order.Item{item}, address, nil, order.PaymentCashOnDelivery)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID string,
	restaurantID string,
	items []Item,
	deliveryAddress DeliveryAddress,
	totalAmount *float64,
	paymentMethod PaymentMethod,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setTotalAmount(totalAmount),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// rider assignment, tracking link, and timestamps. All fields pass the same
// validation as NewOrder; additionally the status must be a member of the
// enum and a non-nil rider id must not be empty.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	restaurantID string,
	items []Item,
	deliveryAddress DeliveryAddress,
	totalAmount *float64,
	paymentMethod PaymentMethod,
	status Status,
	riderID *string,
	trackingLink *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, items, deliveryAddress, totalAmount, paymentMethod)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if riderID != nil && *riderID == "" {
		return nil, errs.NewValueIsRequiredError("rider_id")
	}

	o.status = status
	o.riderID = riderID
	o.trackingLink = trackingLink
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
// Call it when receiving orders across package boundaries.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identity.
func (o *Order) CustomerID() string {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's identity.
func (o *Order) RestaurantID() string {
	return o.restaurantID
}

// Rider returns the assigned rider's identity, or nil while unassigned.
func (o *Order) Rider() *string {
	if o.riderID == nil {
		return nil
	}
	rider := *o.riderID
	return &rider
}

// Items returns a copy of the line item snapshot.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryAddress returns the destination snapshot.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

// TotalAmount returns the caller-supplied total, or nil if none was given.
func (o *Order) TotalAmount() *float64 {
	if o.totalAmount == nil {
		return nil
	}
	total := *o.totalAmount
	return &total
}

// PaymentMethod returns how the order is settled.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TrackingLink returns the external live-tracking URL, or nil if unset.
func (o *Order) TrackingLink() *string {
	if o.trackingLink == nil {
		return nil
	}
	link := *o.trackingLink
	return &link
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation time.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AcceptBy binds the order to the claiming rider.
//
// Rules:
//   - A second claim by the rider already bound is a no-op, so retried
//     accept requests stay idempotent.
//   - A claim while a different rider is bound fails with an
//     OrderAlreadyAssignedError; the losing rider must re-query the
//     claim queue instead of retrying.
//   - A claim on a pending order advances the status to accepted. If the
//     restaurant is already working the order (preparing or ready), the
//     status is left untouched so restaurant-side progress survives.
//
// This method is the in-memory half of the at-most-one-rider guarantee;
// the persistence adapter completes it with a per-row compare-and-set so
// concurrent claims against the same order resolve to exactly one winner.
func (o *Order) AcceptBy(riderID string) error {
	if riderID == "" {
		return errs.NewValueIsRequiredError("rider_id")
	}

	if o.riderID != nil {
		if *o.riderID == riderID {
			return nil
		}
		return errs.NewOrderAlreadyAssignedError(o.id.String(), riderID)
	}

	o.riderID = &riderID
	if o.status == StatusPending {
		o.status = StatusAccepted
	}
	o.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus moves the order to newStatus after membership validation.
// Adjacency against the current status is intentionally not checked (see
// package doc). A non-nil trackingLink is stored alongside the status and
// requires a rider to already be assigned.
func (o *Order) ChangeStatus(newStatus Status, trackingLink *string) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if trackingLink != nil {
		if *trackingLink == "" {
			return errs.NewValueIsRequiredError("live_tracking_link")
		}
		if o.riderID == nil {
			return errs.NewValueIsInvalidErrorWithCause("live_tracking_link",
				errors.New("cannot be set before a rider is assigned"))
		}
	}

	o.status = newStatus
	if trackingLink != nil {
		o.trackingLink = trackingLink
	}
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer_id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID string) error {
	if restaurantID == "" {
		return errs.NewValueIsRequiredError("restaurant_id")
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	validated := make([]Item, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		validated[i] = item
	}

	o.items = validated
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress DeliveryAddress) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setTotalAmount(totalAmount *float64) error {
	if totalAmount != nil && *totalAmount < 0 {
		return errs.NewValueIsInvalidError("total_amount")
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}
