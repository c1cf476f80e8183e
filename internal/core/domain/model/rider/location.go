package rider

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New(
	"Location must be created via NewLocation or RestoreLocation constructor")

// Location is the last known position report of a single rider. The rider
// id is the aggregate identity: storing a new Location for the same rider
// replaces the previous one.
//
// The order id is optional. Riders report positions whenever their app is
// live; only samples tagged with an order feed that order's tracking feed.
type Location struct {
	// riderID is the reporting rider's identity from the auth gateway
	riderID string

	// orderID is the delivery the sample belongs to, nil between orders
	orderID *kernel.UUID

	point   kernel.GeoPoint
	heading kernel.Heading

	// reportedAt is when the sample was received, not device time
	reportedAt time.Time

	isConstructed bool
}

// NewLocation creates a position report received just now.
func NewLocation(
	riderID string,
	orderID *kernel.UUID,
	point kernel.GeoPoint,
	heading kernel.Heading,
) (*Location, error) {
	return RestoreLocation(riderID, orderID, point, heading, time.Now().UTC())
}

// RestoreLocation reconstructs a position report from persistence with its
// original receipt time.
func RestoreLocation(
	riderID string,
	orderID *kernel.UUID,
	point kernel.GeoPoint,
	heading kernel.Heading,
	reportedAt time.Time,
) (*Location, error) {
	l := &Location{
		reportedAt:    reportedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setRiderID(riderID),
		l.setOrderID(orderID),
		l.setPoint(point),
		l.setHeading(heading),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Location was created through a constructor.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}

	return nil
}

// RiderID returns the reporting rider's identity.
func (l *Location) RiderID() string {
	return l.riderID
}

// OrderID returns the delivery the sample belongs to, or nil.
func (l *Location) OrderID() *kernel.UUID {
	if l.orderID == nil {
		return nil
	}
	orderID := *l.orderID
	return &orderID
}

// Point returns the reported coordinates.
func (l *Location) Point() kernel.GeoPoint {
	return l.point
}

// Heading returns the reported compass bearing.
func (l *Location) Heading() kernel.Heading {
	return l.heading
}

// ReportedAt returns when the sample was received.
func (l *Location) ReportedAt() time.Time {
	return l.reportedAt
}

// DistanceKmTo returns the great-circle distance from this report to the
// given point in kilometers.
func (l *Location) DistanceKmTo(point kernel.GeoPoint) (float64, error) {
	return l.point.DistanceKm(point)
}

func (l *Location) setRiderID(riderID string) error {
	if riderID == "" {
		return errs.NewValueIsRequiredError("rider_id")
	}
	l.riderID = riderID
	return nil
}

func (l *Location) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	l.orderID = &id
	return nil
}

func (l *Location) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	l.point = point
	return nil
}

func (l *Location) setHeading(heading kernel.Heading) error {
	if err := heading.Validate(); err != nil {
		return err
	}
	l.heading = heading
	return nil
}
