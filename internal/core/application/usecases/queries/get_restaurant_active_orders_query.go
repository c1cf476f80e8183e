package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantActiveOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantActiveOrdersQuery must be created via NewGetRestaurantActiveOrdersQuery constructor",
)

// GetRestaurantActiveOrdersQuery retrieves a restaurant's working set:
// every order of the restaurant that has not been delivered yet. Cancelled
// and failed orders stay visible so staff can see what fell through.
type GetRestaurantActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID string

	guard guard.ConstructorGuard
}

// NewGetRestaurantActiveOrdersQuery creates a query for a restaurant's
// undelivered orders.
func NewGetRestaurantActiveOrdersQuery(restaurantID string) (GetRestaurantActiveOrdersQuery, error) {
	query := GetRestaurantActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRestaurantID(restaurantID); err != nil {
		return GetRestaurantActiveOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantActiveOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant's identity.
func (q GetRestaurantActiveOrdersQuery) RestaurantID() string {
	return q.restaurantID
}

func (q *GetRestaurantActiveOrdersQuery) setRestaurantID(restaurantID string) error {
	if restaurantID == "" {
		return errs.NewValueIsRequiredError("restaurant_id")
	}
	q.restaurantID = restaurantID
	return nil
}
