package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// List-style reads live on the query side; this port carries only what the
// command handlers need.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CompareAndSetRider persists the aggregate's rider assignment with a
	// per-row compare-and-set: the write only lands if the stored row
	// still has no rider or already carries the same rider. When two
	// riders race for one order, exactly one write wins; the loser gets
	// an OrderAlreadyAssignedError carrying the winning rider.
	// Returns a StoreUnavailableError when the store cannot answer.
	CompareAndSetRider(ctx context.Context, aggregate *order.Order) error
}
