package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/tracking"
)

// UpdateLocationCommandHandler records driver position reports. This is the
// hot write path during an active run, so it touches only the delivery
// aggregate and the location trail.
type UpdateLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateLocationCommandHandler creates a handler for position reports.
func NewUpdateLocationCommandHandler(uowFactory DeliveryUoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
// Only the assigned driver may report. The ping append and the current
// position refresh commit together so the denormalized value never points
// at a ping that was rolled back.
func (h UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := driverRoles.Authorize(cmd.Actor(), "update location"); err != nil {
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

	if err = aggregate.RecordPosition(cmd.Position()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	ping, err := tracking.NewPing(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.Position(),
		cmd.Accuracy(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.TrackingLog().AppendPing(ctx, ping); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
