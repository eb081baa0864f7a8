package kernel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("accepts_values_within_bounds", func(t *testing.T) {
		coords, err := kernel.NewCoordinates(52.5200, 13.4050)

		require.NoError(t, err)
		require.NoError(t, coords.Validate())
		assert.InDelta(t, 52.5200, coords.Latitude(), 1e-9)
		assert.InDelta(t, 13.4050, coords.Longitude(), 1e-9)
	})

	t.Run("accepts_boundary_values", func(t *testing.T) {
		for _, pair := range [][2]float64{
			{kernel.MinLatitude, 0},
			{kernel.MaxLatitude, 0},
			{0, kernel.MinLongitude},
			{0, kernel.MaxLongitude},
		} {
			_, err := kernel.NewCoordinates(pair[0], pair[1])
			require.NoError(t, err)
		}
	})

	t.Run("rejects_latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(90.001, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(0, -180.5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	a, err := kernel.NewCoordinates(1.5, 2.5)
	require.NoError(t, err)
	b, err := kernel.NewCoordinates(1.5, 2.5)
	require.NoError(t, err)
	c, err := kernel.NewCoordinates(1.5, 3.5)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestCoordinates_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var coords kernel.Coordinates

		require.ErrorIs(t, coords.Validate(), kernel.ErrCoordinatesAreNotConstructed)
	})
}
