package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
)

// StartDeliveryCommandHandler handles the start of a delivery run by the
// assigned driver.
type StartDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
func NewStartDeliveryCommandHandler(uowFactory UoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
// Only the assigned driver may start; a second start conflicts. Stamps
// startedAt, moves the parcel to OUT_FOR_DELIVERY and appends the matching
// tracking event atomically.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := driverRoles.Authorize(cmd.Actor(), "start delivery"); err != nil {
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
	if err = aggregate.Start(now); err != nil {
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

	if err = movedParcel.ChangeStatus(parcel.StatusOutForDelivery, now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, movedParcel); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		movedParcel.ID(),
		parcel.StatusOutForDelivery,
		"Parcel is out for delivery",
		nil,
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
