// Package locationrepo persists rider position reports. The table holds one
// row per rider, keyed by the rider's identity, so storing a report is
// always an upsert.
package locationrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for a rider's last known
// position report.
type LocationDTO struct {
	RiderID    string     `gorm:"primaryKey"`
	OrderID    *uuid.UUID `gorm:"type:uuid;index"`
	Latitude   float64
	Longitude  float64
	Heading    float64
	ReportedAt time.Time
}

// TableName specifies the database table name for rider position reports.
func (LocationDTO) TableName() string {
	return "rider_locations"
}

func fromDomain(aggregate *rider.Location) LocationDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return LocationDTO{
		RiderID:    aggregate.RiderID(),
		OrderID:    orderID,
		Latitude:   aggregate.Point().Latitude(),
		Longitude:  aggregate.Point().Longitude(),
		Heading:    aggregate.Heading().Degrees(),
		ReportedAt: aggregate.ReportedAt(),
	}
}

func toDomain(dto LocationDTO) (*rider.Location, error) {
	var orderID *kernel.UUID
	if dto.OrderID != nil {
		id, err := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if err != nil {
			return nil, err
		}
		orderID = &id
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	heading, err := kernel.NewHeading(dto.Heading)
	if err != nil {
		return nil, err
	}

	return rider.RestoreLocation(dto.RiderID, orderID, point, heading, dto.ReportedAt)
}
