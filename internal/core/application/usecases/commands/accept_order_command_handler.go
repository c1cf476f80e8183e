package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler arbitrates rider claims on orders.
//
// The claim is checked twice: AcceptBy applies the assignment rules to the
// loaded aggregate, then CompareAndSetRider makes the write conditional on
// the stored row still being unassigned. The second check is what resolves
// claims that race between the load and the write.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for rider claim operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a rider's claim and returns the order as accepted.
// Returns an ObjectNotFoundError for unknown orders and an
// OrderAlreadyAssignedError when a different rider holds the order;
// a repeat claim by the bound rider succeeds without changing anything.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AcceptBy(cmd.RiderID()); err != nil {
		return nil, err
	}

	if err = orderRepo.CompareAndSetRider(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
