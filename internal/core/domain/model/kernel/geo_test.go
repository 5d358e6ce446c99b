package kernel_test

import (
	"testing"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(25.77, -80.19)

		require.NoError(t, err)
		assert.InDelta(t, 25.77, point.Lat(), 1e-9)
		assert.InDelta(t, -80.19, point.Lon(), 1e-9)
		assert.NoError(t, point.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"antimeridian west", 0, -180},
			{"antimeridian east", 0, 180},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				point, err := kernel.NewGeoPoint(tc.lat, tc.lon)
				require.NoError(t, err)
				assert.NoError(t, point.Validate())
			})
		}
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too low", -90.01, 0},
			{"latitude too high", 90.01, 0},
			{"longitude too low", 0, -180.01},
			{"longitude too high", 0, 180.01},
			{"both invalid", 120, 240},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lon)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(25.77, -80.19)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(25.77, -80.19)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(25.78, -80.19)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
