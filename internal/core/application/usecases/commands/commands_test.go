package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand(t *testing.T) {
	actor := testActor(t, identity.RoleCustomer)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), actor, kernel.NewUUID(), testDetails())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("zero_parcel_id", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(kernel.UUID{}, actor, kernel.NewUUID(), testDetails())

		require.Error(t, err)
	})

	t.Run("invalid_details", func(t *testing.T) {
		details := testDetails()
		details.WeightKG = 0

		_, err := commands.NewCreateParcelCommand(kernel.NewUUID(), actor, kernel.NewUUID(), details)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unconstructed_actor", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(),
			identity.Identity{},
			kernel.NewUUID(),
			testDetails(),
		)

		require.Error(t, err)
	})
}

func TestNewUpdateParcelStatusCommand(t *testing.T) {
	actor := testActor(t, identity.RoleAdmin)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewUpdateParcelStatusCommand(
			kernel.NewUUID(), actor, parcel.StatusPickedUp, "Package picked up", nil, nil,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("unknown_status", func(t *testing.T) {
		_, err := commands.NewUpdateParcelStatusCommand(
			kernel.NewUUID(), actor, parcel.StatusUnknown, "Package picked up", nil, nil,
		)

		require.Error(t, err)
	})

	t.Run("empty_description", func(t *testing.T) {
		_, err := commands.NewUpdateParcelStatusCommand(
			kernel.NewUUID(), actor, parcel.StatusPickedUp, "", nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_coordinates", func(t *testing.T) {
		var coords kernel.Coordinates

		_, err := commands.NewUpdateParcelStatusCommand(
			kernel.NewUUID(), actor, parcel.StatusPickedUp, "Package picked up", nil, &coords,
		)

		require.Error(t, err)
	})
}

func TestNewDeleteParcelCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewDeleteParcelCommand(kernel.NewUUID(), testActor(t, identity.RoleCustomer))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("not_constructed", func(t *testing.T) {
		var cmd commands.DeleteParcelCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteParcelCommandIsNotConstructed)
	})
}

func TestNewCreateDeliveryCommand(t *testing.T) {
	actor := testActor(t, identity.RoleAdmin)

	t.Run("valid_without_driver", func(t *testing.T) {
		cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), actor, kernel.NewUUID(), nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Nil(t, cmd.DriverID())
	})

	t.Run("zero_driver_id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), actor, kernel.NewUUID(), &zero)

		require.Error(t, err)
	})
}

func TestNewAssignDriverCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAssignDriverCommand(
			kernel.NewUUID(), testActor(t, identity.RoleAdmin), kernel.NewUUID(),
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("zero_driver_id", func(t *testing.T) {
		_, err := commands.NewAssignDriverCommand(
			kernel.NewUUID(), testActor(t, identity.RoleAdmin), kernel.UUID{},
		)

		require.Error(t, err)
	})
}

func TestNewCompleteDeliveryCommand(t *testing.T) {
	notes := "left at reception"

	cmd, err := commands.NewCompleteDeliveryCommand(
		kernel.NewUUID(),
		testActor(t, identity.RoleDriver),
		delivery.Completion{Notes: &notes},
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, notes, *cmd.Completion().Notes)
}

func TestNewStartDeliveryCommand_NotConstructed(t *testing.T) {
	var cmd commands.StartDeliveryCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrStartDeliveryCommandIsNotConstructed)
}
