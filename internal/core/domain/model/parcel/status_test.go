package parcel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses_all_lifecycle_states", func(t *testing.T) {
		cases := map[string]parcel.Status{
			"PENDING":          parcel.StatusPending,
			"PICKED_UP":        parcel.StatusPickedUp,
			"IN_TRANSIT":       parcel.StatusInTransit,
			"OUT_FOR_DELIVERY": parcel.StatusOutForDelivery,
			"DELIVERED":        parcel.StatusDelivered,
			"FAILED":           parcel.StatusFailed,
			"CANCELLED":        parcel.StatusCancelled,
		}

		for raw, expected := range cases {
			status, err := parcel.StatusFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
			assert.Equal(t, raw, status.String())
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := parcel.StatusFromString("LOST")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_status", func(t *testing.T) {
		_, err := parcel.StatusFromString("")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, parcel.StatusPending.Validate())
	require.NoError(t, parcel.StatusCancelled.Validate())
	require.ErrorIs(t, parcel.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, parcel.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []parcel.Status{parcel.StatusDelivered, parcel.StatusFailed, parcel.StatusCancelled}
	for _, status := range terminal {
		assert.True(t, status.IsTerminal(), status.String())
	}

	active := []parcel.Status{
		parcel.StatusPending, parcel.StatusPickedUp,
		parcel.StatusInTransit, parcel.StatusOutForDelivery,
	}
	for _, status := range active {
		assert.False(t, status.IsTerminal(), status.String())
	}
}

func TestPriorityFromString(t *testing.T) {
	t.Run("parses_known_priorities", func(t *testing.T) {
		cases := map[string]parcel.Priority{
			"STANDARD": parcel.PriorityStandard,
			"EXPRESS":  parcel.PriorityExpress,
			"URGENT":   parcel.PriorityUrgent,
		}

		for raw, expected := range cases {
			priority, err := parcel.PriorityFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, expected, priority)
		}
	})

	t.Run("empty_string_defaults_to_standard", func(t *testing.T) {
		priority, err := parcel.PriorityFromString("")

		require.NoError(t, err)
		assert.Equal(t, parcel.PriorityStandard, priority)
	})

	t.Run("rejects_unknown_priority", func(t *testing.T) {
		_, err := parcel.PriorityFromString("SAME_DAY")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
