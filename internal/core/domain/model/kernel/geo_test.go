package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(52.52, 13.405)

		require.NoError(t, err)
		assert.InDelta(t, 52.52, point.Latitude(), 1e-9)
		assert.InDelta(t, 13.405, point.Longitude(), 1e-9)
	})

	t.Run("boundary_coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"south_pole", -90, 0},
			{"north_pole", 90, 0},
			{"date_line_west", 0, -180},
			{"date_line_east", 0, 180},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid_coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"latitude_too_low", -90.1, 0},
			{"latitude_too_high", 90.1, 0},
			{"longitude_too_low", 0, -180.1},
			{"longitude_too_high", 0, 180.1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var point kernel.GeoPoint

		require.Error(t, point.Validate())
	})

	t.Run("constructed_point_is_valid", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(1, 2)

		require.NoError(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1.5, 2.5)
	b, _ := kernel.NewGeoPoint(1.5, 2.5)
	c, _ := kernel.NewGeoPoint(3.0, 4.0)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.GeoPoint{})
	require.Error(t, err)
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("known_distance", func(t *testing.T) {
		// Berlin to Hamburg, roughly 255 km great-circle.
		berlin, _ := kernel.NewGeoPoint(52.5200, 13.4050)
		hamburg, _ := kernel.NewGeoPoint(53.5511, 9.9937)

		distance, err := berlin.DistanceKm(hamburg)

		require.NoError(t, err)
		assert.InDelta(t, 255, distance, 5)
	})

	t.Run("zero_distance_to_self", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(10, 20)

		distance, err := point.DistanceKm(point)

		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(1, 2)
		b, _ := kernel.NewGeoPoint(3, 4)

		ab, err := a.DistanceKm(b)
		require.NoError(t, err)
		ba, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("unconstructed_point_fails", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(1, 2)

		_, err := point.DistanceKm(kernel.GeoPoint{})

		require.Error(t, err)
	})
}

func TestNewHeading(t *testing.T) {
	t.Run("valid_headings", func(t *testing.T) {
		for _, degrees := range []float64{0, 90, 180, 359.99} {
			h, err := kernel.NewHeading(degrees)
			require.NoError(t, err)
			assert.InDelta(t, degrees, h.Degrees(), 1e-9)
		}
	})

	t.Run("invalid_headings", func(t *testing.T) {
		for _, degrees := range []float64{-0.1, 360, 720} {
			_, err := kernel.NewHeading(degrees)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}
