package locationrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert stores the rider's latest position report. An existing row for
// the same rider is replaced wholesale; there is no report history.
func (r *GormLocationRepository) Upsert(ctx context.Context, aggregate *rider.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "rider_id"}},
		UpdateAll: true,
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	if orderID := aggregate.OrderID(); orderID != nil {
		r.tracker.TrackAggregate(*orderID, aggregate)
	}
	return nil
}

// GetByRider retrieves a rider's last known position report.
func (r *GormLocationRepository) GetByRider(ctx context.Context, riderID string) (*rider.Location, error) {
	if riderID == "" {
		return nil, errs.NewValueIsRequiredError("rider_id")
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "rider_id = ?", riderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider location", riderID)
		}
		return nil, err
	}

	return toDomain(dto)
}
