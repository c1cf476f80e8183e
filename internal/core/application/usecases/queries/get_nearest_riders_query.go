package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetNearestRidersQueryIsNotConstructed = errors.New(
	"GetNearestRidersQuery must be created via NewGetNearestRidersQuery constructor",
)

// DefaultNearestRidersLimit caps the result set when the caller gives no
// explicit limit.
const DefaultNearestRidersLimit = 10

// GetNearestRidersQuery finds the riders whose last known location is
// closest to a point, typically a restaurant preparing an order.
type GetNearestRidersQuery struct { //nolint:recvcheck //using for validation
	point kernel.GeoPoint
	limit int

	guard guard.ConstructorGuard
}

// NewGetNearestRidersQuery creates a proximity query around the given
// point. A non-positive limit falls back to DefaultNearestRidersLimit.
func NewGetNearestRidersQuery(point kernel.GeoPoint, limit int) (GetNearestRidersQuery, error) {
	query := GetNearestRidersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPoint(point); err != nil {
		return GetNearestRidersQuery{}, err
	}
	if limit <= 0 {
		limit = DefaultNearestRidersLimit
	}
	if limit > 100 {
		return GetNearestRidersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, 100)
	}
	query.limit = limit

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearestRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearestRidersQueryIsNotConstructed)
}

// Point returns the search origin.
func (q GetNearestRidersQuery) Point() kernel.GeoPoint {
	return q.point
}

// Limit returns the maximum number of riders to return.
func (q GetNearestRidersQuery) Limit() int {
	return q.limit
}

func (q *GetNearestRidersQuery) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	q.point = point
	return nil
}
