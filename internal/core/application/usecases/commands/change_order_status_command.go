package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status, optionally attaching a live tracking link.
//
// Example:
//
//	link := "https://track.example/abc"
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.StatusOutForDelivery, &link)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	status       order.Status
	trackingLink *string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change command. The status
// must be a member of the status enum and a non-nil tracking link must not
// be empty.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	trackingLink *string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setTrackingLink(trackingLink),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// TrackingLink returns the live tracking link to attach, or nil.
func (c ChangeOrderStatusCommand) TrackingLink() *string {
	if c.trackingLink == nil {
		return nil
	}
	link := *c.trackingLink
	return &link
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ChangeOrderStatusCommand) setTrackingLink(trackingLink *string) error {
	if trackingLink != nil && *trackingLink == "" {
		return errs.NewValueIsRequiredError("live_tracking_link")
	}
	c.trackingLink = trackingLink
	return nil
}
