package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetAllActiveOrdersQueryIsNotConstructed = errors.New(
	"GetAllActiveOrdersQuery must be created via NewGetAllActiveOrdersQuery constructor",
)

// GetAllActiveOrdersQuery retrieves every order currently moving through
// the fulfilment pipeline, across all restaurants. This is the operational
// overview feed.
type GetAllActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllActiveOrdersQuery creates a parameterless query for all orders
// in flight.
func NewGetAllActiveOrdersQuery() GetAllActiveOrdersQuery {
	return GetAllActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllActiveOrdersQueryIsNotConstructed)
}
