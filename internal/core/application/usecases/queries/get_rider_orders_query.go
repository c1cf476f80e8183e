package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRiderOrdersQueryIsNotConstructed = errors.New(
	"GetRiderOrdersQuery must be created via NewGetRiderOrdersQuery constructor",
)

// GetRiderOrdersQuery retrieves a rider's current workload: orders bound
// to the rider that have not reached a terminal status.
type GetRiderOrdersQuery struct { //nolint:recvcheck //using for validation
	riderID string

	guard guard.ConstructorGuard
}

// NewGetRiderOrdersQuery creates a query for a rider's current orders.
func NewGetRiderOrdersQuery(riderID string) (GetRiderOrdersQuery, error) {
	query := GetRiderOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRiderID(riderID); err != nil {
		return GetRiderOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderOrdersQueryIsNotConstructed)
}

// RiderID returns the rider's identity.
func (q GetRiderOrdersQuery) RiderID() string {
	return q.riderID
}

func (q *GetRiderOrdersQuery) setRiderID(riderID string) error {
	if riderID == "" {
		return errs.NewValueIsRequiredError("rider_id")
	}
	q.riderID = riderID
	return nil
}
