package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrPublishLocationCommandIsNotConstructed = errors.New(
	"PublishLocationCommand must be created via NewPublishLocationCommand constructor",
)

// PublishLocationCommand represents one rider position sample: store it as
// the rider's last known location and fan it out to the tagged order's
// tracking subscribers.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(52.52, 13.405)
//	cmd, err := NewPublishLocationCommand("rider-1", &orderID, point, 90)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPublishLocationCommandHandler(uowFactory, hub, logger)
//	err = handler.Handle(ctx, cmd)
type PublishLocationCommand struct { //nolint:recvcheck //using for validation
	riderID string
	orderID *kernel.UUID
	point   kernel.GeoPoint
	heading kernel.Heading

	guard guard.ConstructorGuard
}

// NewPublishLocationCommand creates a position sample command. The order id
// is optional; untagged samples update the rider's last known location but
// feed no tracking room.
func NewPublishLocationCommand(
	riderID string,
	orderID *kernel.UUID,
	point kernel.GeoPoint,
	heading kernel.Heading,
) (PublishLocationCommand, error) {
	cmd := PublishLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setOrderID(orderID),
		cmd.setPoint(point),
		cmd.setHeading(heading),
	); err != nil {
		return PublishLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishLocationCommand) Validate() error {
	return c.guard.Validate(ErrPublishLocationCommandIsNotConstructed)
}

// RiderID returns the reporting rider's identity.
func (c PublishLocationCommand) RiderID() string {
	return c.riderID
}

// OrderID returns the delivery the sample belongs to, or nil.
func (c PublishLocationCommand) OrderID() *kernel.UUID {
	if c.orderID == nil {
		return nil
	}
	orderID := *c.orderID
	return &orderID
}

// Point returns the reported coordinates.
func (c PublishLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// Heading returns the reported compass bearing.
func (c PublishLocationCommand) Heading() kernel.Heading {
	return c.heading
}

func (c *PublishLocationCommand) setRiderID(riderID string) error {
	if riderID == "" {
		return errs.NewValueIsRequiredError("rider_id")
	}
	c.riderID = riderID
	return nil
}

func (c *PublishLocationCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	c.orderID = &id
	return nil
}

func (c *PublishLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}

func (c *PublishLocationCommand) setHeading(heading kernel.Heading) error {
	if err := heading.Validate(); err != nil {
		return err
	}
	c.heading = heading
	return nil
}
