package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllActiveOrdersQueryHandler retrieves all in-flight orders across
// restaurants. "Active" here is the pipeline set: pending, preparing,
// ready, accepted. Later stages belong to the rider's current-orders view.
type GetAllActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllActiveOrdersQueryHandler creates a handler for the operational
// overview feed. Requires a GORM database connection.
func NewGetAllActiveOrdersQueryHandler(db *gorm.DB) GetAllActiveOrdersQueryHandler {
	return GetAllActiveOrdersQueryHandler{db: db}
}

// Handle returns all pipeline orders, newest first.
func (h GetAllActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN ?
		ORDER BY created_at DESC
	`, order.ActiveStatuses()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
