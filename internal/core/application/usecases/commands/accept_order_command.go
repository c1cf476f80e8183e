package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a rider's claim on an order. Many riders
// may issue this command for the same order concurrently; exactly one wins.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(orderID, "rider-1")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAcceptOrderCommandHandler(uowFactory)
//	accepted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrOrderAlreadyAssigned) {
//	    // another rider won the claim
//	}
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a rider to claim an order.
func NewAcceptOrderCommand(orderID kernel.UUID, riderID string) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the claimed order's identifier.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the claiming rider's identity.
func (c AcceptOrderCommand) RiderID() string {
	return c.riderID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setRiderID(riderID string) error {
	if riderID == "" {
		return errs.NewValueIsRequiredError("rider_id")
	}
	c.riderID = riderID
	return nil
}
