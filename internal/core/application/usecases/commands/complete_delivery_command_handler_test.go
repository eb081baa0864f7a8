package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testParcel := testParcelFor(t, kernel.NewUUID())
	driverID := kernel.NewUUID()
	testDelivery := assignedDelivery(t, testParcel.ID(), driverID)
	require.NoError(t, testDelivery.Start(time.Now()))

	notes := "left with neighbour"
	cmd, err := commands.NewCompleteDeliveryCommand(
		testDelivery.ID(),
		driverActor(t, driverID),
		delivery.Completion{Notes: &notes},
	)
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

	handler := commands.NewCompleteDeliveryCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, delivery.PhaseCompleted, testDelivery.Phase())
	require.NotNil(t, testDelivery.Completion().Notes)
	assert.Equal(t, notes, *testDelivery.Completion().Notes)

	assert.Equal(t, parcel.StatusDelivered, testParcel.Status())
	assert.NotNil(t, testParcel.DeliveryDate())

	event := trackingLog.Calls[0].Arguments[1].(tracking.Event)
	assert.Equal(t, parcel.StatusDelivered, event.Status())
	assert.Equal(t, "Parcel delivered successfully", event.Description())
	require.NotNil(t, event.Location())
	assert.Equal(t, testParcel.Details().DeliveryAddress, *event.Location())

	deliveryRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_OtherDriverForbidden(t *testing.T) {
	ctx := t.Context()
	testDelivery := assignedDelivery(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewCompleteDeliveryCommand(
		testDelivery.ID(),
		driverActor(t, kernel.NewUUID()),
		delivery.Completion{},
	)
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

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	deliveryRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_DoubleCompleteConflicts(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testDelivery := assignedDelivery(t, kernel.NewUUID(), driverID)
	require.NoError(t, testDelivery.Complete(time.Now(), delivery.Completion{}))

	cmd, err := commands.NewCompleteDeliveryCommand(
		testDelivery.ID(),
		driverActor(t, driverID),
		delivery.Completion{},
	)
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

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
}
