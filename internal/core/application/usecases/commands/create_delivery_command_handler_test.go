package commands_test

import (
	"testing"

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

func TestCreateDeliveryCommandHandler_Handle_WithoutDriver(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, identity.RoleAdmin)
	testParcel := testParcelFor(t, kernel.NewUUID())

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), actor, testParcel.ID(), nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		deliveryRepo.On("GetByParcelID", ctx, testParcel.ID()).
			Return(nil, errs.NewObjectNotFoundError("parcelId", testParcel.ID())).
			Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))

	addedDelivery := deliveryRepo.Calls[1].Arguments[1].(*delivery.Delivery)
	assert.Equal(t, delivery.PhaseUnassigned, addedDelivery.Phase())
	assert.True(t, addedDelivery.ParcelID().IsEqual(testParcel.ID()))

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_WithDriver(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, identity.RoleAdmin)
	testParcel := testParcelFor(t, kernel.NewUUID())
	driverID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), actor, testParcel.ID(), &driverID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	deliveryRepo := new(MockDeliveryRepository)
	trackingLog := new(MockTrackingLog)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		deliveryRepo.On("GetByParcelID", ctx, testParcel.ID()).
			Return(nil, errs.NewObjectNotFoundError("parcelId", testParcel.ID())).
			Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, driverID).Return(testDriverUser(driverID), nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("TrackingLog").Return(trackingLog).Once(),
		trackingLog.On("AppendEvent", ctx, mock.AnythingOfType("tracking.Event")).Return(nil).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))

	addedDelivery := deliveryRepo.Calls[1].Arguments[1].(*delivery.Delivery)
	assert.Equal(t, delivery.PhaseAssigned, addedDelivery.Phase())
	require.NotNil(t, addedDelivery.DriverID())
	assert.True(t, addedDelivery.DriverID().IsEqual(driverID))

	assert.Equal(t, parcel.StatusInTransit, testParcel.Status())

	event := trackingLog.Calls[0].Arguments[1].(tracking.Event)
	assert.Equal(t, parcel.StatusInTransit, event.Status())
	assert.Equal(t, "Delivery assigned to Dave Miles", event.Description())
}

func TestCreateDeliveryCommandHandler_Handle_DuplicateConflicts(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, identity.RoleAdmin)
	testParcel := testParcelFor(t, kernel.NewUUID())
	existingDelivery := testDeliveryFor(t, testParcel.ID())

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), actor, testParcel.ID(), nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		deliveryRepo.On("GetByParcelID", ctx, testParcel.ID()).Return(existingDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	deliveryRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()

	for _, role := range []identity.Role{identity.RoleCustomer, identity.RoleDriver} {
		actor := testActor(t, role)
		cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), actor, kernel.NewUUID(), nil)
		require.NoError(t, err)

		factory := new(MockUoWFactory)
		handler := commands.NewCreateDeliveryCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAccessForbidden)
		factory.AssertNotCalled(t, "Create")
	}
}

func TestCreateDeliveryCommandHandler_Handle_NonDriverTargetInvalid(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, identity.RoleAdmin)
	testParcel := testParcelFor(t, kernel.NewUUID())
	targetID := kernel.NewUUID()
	target := identity.User{
		ID:        targetID,
		Email:     "customer@example.com",
		FirstName: "Cora",
		LastName:  "Smith",
		Role:      identity.RoleCustomer,
	}

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), actor, testParcel.ID(), &targetID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	deliveryRepo := new(MockDeliveryRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		deliveryRepo.On("GetByParcelID", ctx, testParcel.ID()).
			Return(nil, errs.NewObjectNotFoundError("parcelId", testParcel.ID())).
			Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, targetID).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	deliveryRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}
