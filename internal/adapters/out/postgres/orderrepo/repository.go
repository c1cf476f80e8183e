package orderrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CompareAndSetRider persists the aggregate's rider assignment with a
// conditional update: the write only lands while the stored row has no
// rider or already carries the same rider. Concurrent claims therefore
// resolve to exactly one winner at the database, regardless of what each
// handler saw when it loaded the aggregate.
//
// A transiently failing statement is retried once; if the store still
// cannot answer, a StoreUnavailableError tells the caller the claim's
// outcome is unknown.
func (r *GormOrderRepository) CompareAndSetRider(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	riderID := aggregate.Rider()
	if riderID == nil {
		return errs.NewValueIsRequiredError("rider_id")
	}

	dto := fromDomain(aggregate)
	assignment := map[string]any{
		"rider_id":   *riderID,
		"status":     dto.Status,
		"updated_at": dto.UpdatedAt,
	}

	var result *gorm.DB
	for attempt := 0; ; attempt++ {
		result = r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ? AND (rider_id IS NULL OR rider_id = ?)", dto.ID, *riderID).
			Updates(assignment)
		if result.Error == nil {
			break
		}
		if attempt == 0 && isTransient(result.Error) {
			continue
		}
		if isTransient(result.Error) {
			return errs.NewStoreUnavailableError("compare-and-set rider", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainLostClaim(ctx, aggregate.ID(), *riderID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// explainLostClaim re-reads the row to distinguish a missing order from a
// claim lost to another rider.
func (r *GormOrderRepository) explainLostClaim(ctx context.Context, id kernel.UUID, riderID string) error {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return err
	}

	return errs.NewOrderAlreadyAssignedError(id.String(), riderID)
}

// isTransient reports whether the error looks like a temporary store
// failure worth one retry: connection-class failures, serialization
// conflicts, and deadlocks.
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return true
		}
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return pgconn.SafeToRetry(err)
}
