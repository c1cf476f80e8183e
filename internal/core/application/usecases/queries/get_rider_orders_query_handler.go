package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRiderOrdersQueryHandler retrieves the orders a rider is currently
// working: bound to the rider and not yet delivered, cancelled, or failed.
type GetRiderOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderOrdersQueryHandler creates a handler for rider workload
// queries. Requires a GORM database connection.
func NewGetRiderOrdersQueryHandler(db *gorm.DB) GetRiderOrdersQueryHandler {
	return GetRiderOrdersQueryHandler{db: db}
}

// Handle returns the rider's non-terminal orders, newest first.
func (h GetRiderOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRiderOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE rider_id = ? AND status NOT IN ?
		ORDER BY created_at DESC
	`, query.RiderID(), order.TerminalStatuses()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
