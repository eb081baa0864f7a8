package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignedDelivery(t *testing.T, parcelID, driverID kernel.UUID) *delivery.Delivery {
	t.Helper()

	d := testDeliveryFor(t, parcelID)
	require.NoError(t, d.AssignDriver(driverID, time.Now()))
	return d
}

func driverActor(t *testing.T, driverID kernel.UUID) identity.Identity {
	t.Helper()

	actor, err := identity.NewIdentity(driverID, identity.RoleDriver)
	require.NoError(t, err)
	return actor
}

func TestStartDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testParcel := testParcelFor(t, kernel.NewUUID())
	driverID := kernel.NewUUID()
	testDelivery := assignedDelivery(t, testParcel.ID(), driverID)

	cmd, err := commands.NewStartDeliveryCommand(testDelivery.ID(), driverActor(t, driverID))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	deliveryRepo := new(MockDeliveryRepository)
	trackingLog := new(MockTrackingLog)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("TrackingLog").Return(trackingLog).Once(),
		trackingLog.On("AppendEvent", ctx, mock.AnythingOfType("tracking.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartDeliveryCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, delivery.PhaseStarted, testDelivery.Phase())
	assert.Equal(t, parcel.StatusOutForDelivery, testParcel.Status())

	event := trackingLog.Calls[0].Arguments[1].(tracking.Event)
	assert.Equal(t, parcel.StatusOutForDelivery, event.Status())
	assert.Equal(t, "Parcel is out for delivery", event.Description())

	deliveryRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartDeliveryCommandHandler_Handle_OtherDriverForbidden(t *testing.T) {
	ctx := t.Context()
	testDelivery := assignedDelivery(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewStartDeliveryCommand(testDelivery.ID(), driverActor(t, kernel.NewUUID()))
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestStartDeliveryCommandHandler_Handle_NonDriverRoleForbidden(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewStartDeliveryCommand(kernel.NewUUID(), testActor(t, identity.RoleAdmin))
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := commands.NewStartDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestStartDeliveryCommandHandler_Handle_DoubleStartConflicts(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testDelivery := assignedDelivery(t, kernel.NewUUID(), driverID)
	require.NoError(t, testDelivery.Start(time.Now()))

	cmd, err := commands.NewStartDeliveryCommand(testDelivery.ID(), driverActor(t, driverID))
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
}
