package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRestaurantActiveOrdersQueryHandler retrieves a restaurant's
// undelivered orders, newest first.
type GetRestaurantActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantActiveOrdersQueryHandler creates a handler for restaurant
// dashboard queries. Requires a GORM database connection.
func NewGetRestaurantActiveOrdersQueryHandler(db *gorm.DB) GetRestaurantActiveOrdersQueryHandler {
	return GetRestaurantActiveOrdersQueryHandler{db: db}
}

// Handle returns every order of the restaurant whose status is not
// "delivered", newest first.
func (h GetRestaurantActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_id = ? AND status != ?
		ORDER BY created_at DESC
	`, query.RestaurantID(), order.StatusDelivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
