package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/rider"
)

// LocationRepository defines the persistence contract for rider position
// reports. One row per rider: storing a report replaces whatever the rider
// reported before.
type LocationRepository interface {
	// Upsert stores the rider's latest position report, replacing any
	// previous report for the same rider.
	Upsert(ctx context.Context, aggregate *rider.Location) error

	// GetByRider retrieves a rider's last known position report.
	// Returns an ObjectNotFoundError if the rider never reported.
	GetByRider(ctx context.Context, riderID string) (*rider.Location, error)
}
