package parcel_test

import (
	"strings"
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingNumber(t *testing.T) {
	t.Run("has_fixed_length_and_prefix", func(t *testing.T) {
		number := parcel.GenerateTrackingNumber(time.Now())

		require.NoError(t, number.Validate())
		assert.Len(t, number.String(), parcel.TrackingNumberLength)
		assert.True(t, strings.HasPrefix(number.String(), "TRK"))
	})

	t.Run("successive_candidates_differ", func(t *testing.T) {
		now := time.Now()
		seen := make(map[string]bool)
		for range 100 {
			seen[parcel.GenerateTrackingNumber(now).String()] = true
		}

		// The random tail makes collisions within one timestamp unlikely.
		assert.Greater(t, len(seen), 1)
	})
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("accepts_generated_value", func(t *testing.T) {
		generated := parcel.GenerateTrackingNumber(time.Now())

		restored, err := parcel.TrackingNumberFromString(generated.String())

		require.NoError(t, err)
		assert.True(t, generated.IsEqual(restored))
	})

	t.Run("rejects_empty", func(t *testing.T) {
		_, err := parcel.TrackingNumberFromString("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		_, err := parcel.TrackingNumberFromString("TRK123")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTrackingNumber_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var number parcel.TrackingNumber

		require.ErrorIs(t, number.Validate(), errs.ErrValueIsRequired)
	})
}
