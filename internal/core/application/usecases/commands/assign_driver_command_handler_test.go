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

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, identity.RoleAdmin)
	testParcel := testParcelFor(t, kernel.NewUUID())
	testDelivery := testDeliveryFor(t, testParcel.ID())
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(testDelivery.ID(), actor, driverID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	deliveryRepo := new(MockDeliveryRepository)
	trackingLog := new(MockTrackingLog)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, driverID).Return(testDriverUser(driverID), nil).Once(),
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

	handler := commands.NewAssignDriverCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, delivery.PhaseAssigned, testDelivery.Phase())
	require.NotNil(t, testDelivery.DriverID())
	assert.True(t, testDelivery.DriverID().IsEqual(driverID))
	assert.Equal(t, parcel.StatusInTransit, testParcel.Status())

	event := trackingLog.Calls[0].Arguments[1].(tracking.Event)
	assert.Equal(t, "Delivery assigned to Dave Miles", event.Description())

	deliveryRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_UnknownDriverInvalid(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, identity.RoleAdmin)
	testDelivery := testDeliveryFor(t, kernel.NewUUID())
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(testDelivery.ID(), actor, driverID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, driverID).
			Return(identity.User{}, errs.NewObjectNotFoundError("userId", driverID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_StartedRunConflicts(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, identity.RoleAdmin)
	testDelivery := testDeliveryFor(t, kernel.NewUUID())
	require.NoError(t, testDelivery.AssignDriver(kernel.NewUUID(), time.Now()))
	require.NoError(t, testDelivery.Start(time.Now()))
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(testDelivery.ID(), actor, driverID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, driverID).Return(testDriverUser(driverID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
