package queries

import (
	"context"
	"database/sql"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NearestRiderResponse is one rider in a proximity result, ordered by
// distance from the search origin.
type NearestRiderResponse struct {
	RiderID    string       `json:"rider_id"`
	OrderID    *kernel.UUID `json:"order_id"`
	Latitude   float64      `json:"latitude"`
	Longitude  float64      `json:"longitude"`
	Heading    float64      `json:"heading"`
	DistanceKm float64      `json:"distance_km"`
	ReportedAt time.Time    `json:"reported_at"`
}

// GetNearestRidersQueryHandler finds riders by proximity to a point using
// their last known locations.
//
// Distance is computed in SQL with the Haversine formula so ordering and
// limiting happen in the database rather than in memory.
type GetNearestRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetNearestRidersQueryHandler creates a handler for rider proximity
// queries. Requires a GORM database connection.
func NewGetNearestRidersQueryHandler(db *gorm.DB) GetNearestRidersQueryHandler {
	return GetNearestRidersQueryHandler{db: db}
}

// Handle returns up to the query's limit of riders, closest first.
func (h GetNearestRidersQueryHandler) Handle(
	ctx context.Context,
	query GetNearestRidersQuery,
) ([]NearestRiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rider_id,
			order_id,
			latitude,
			longitude,
			heading,
			reported_at,
			? * 2 * ASIN(SQRT(
				POWER(SIN(RADIANS(latitude - ?) / 2), 2) +
				COS(RADIANS(?)) * COS(RADIANS(latitude)) *
				POWER(SIN(RADIANS(longitude - ?) / 2), 2)
			)) AS distance_km
		FROM rider_locations
		ORDER BY distance_km
		LIMIT ?
	`,
		kernel.EarthRadiusKm,
		query.Point().Latitude(),
		query.Point().Latitude(),
		query.Point().Longitude(),
		query.Limit(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]NearestRiderResponse, 0)
	for rows.Next() {
		var resp NearestRiderResponse
		var orderID uuid.NullUUID
		var reportedAt sql.NullTime

		if err = rows.Scan(
			&resp.RiderID,
			&orderID,
			&resp.Latitude,
			&resp.Longitude,
			&resp.Heading,
			&reportedAt,
			&resp.DistanceKm,
		); err != nil {
			return nil, err
		}

		if orderID.Valid {
			id, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.OrderID = &id
		}
		if reportedAt.Valid {
			resp.ReportedAt = reportedAt.Time
		}
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
