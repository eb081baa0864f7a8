package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
)

// CompleteDeliveryCommandHandler handles the completion of a delivery run
// by the assigned driver. Completion stamps the parcel's deliveryDate and
// writes the DELIVERED event with the delivery address as location.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completing deliveries.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Only the assigned driver may complete; a second completion conflicts.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := driverRoles.Authorize(cmd.Actor(), "complete delivery"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureAssignedDriver(cmd.Actor()); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.Complete(now, cmd.Completion()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	movedParcel, err := parcelRepo.Get(ctx, aggregate.ParcelID())
	if err != nil {
		return err
	}

	if err = movedParcel.ChangeStatus(parcel.StatusDelivered, now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, movedParcel); err != nil {
		return err
	}

	deliveryAddress := movedParcel.Details().DeliveryAddress
	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		movedParcel.ID(),
		parcel.StatusDelivered,
		"Parcel delivered successfully",
		&deliveryAddress,
		nil,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.TrackingLog().AppendEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
