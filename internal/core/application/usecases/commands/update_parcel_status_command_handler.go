package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/tracking"
)

// UpdateParcelStatusCommandHandler handles manual status changes by
// operations staff and drivers. The status field and the tracking log move
// together in one transaction so the cached status never disagrees with the
// newest event.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Stamps pickupDate/deliveryDate when the target status is PICKED_UP or
// DELIVERED, updates the parcel and appends the tracking event atomically.
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := updateParcelStatusRoles.Authorize(cmd.Actor(), "update parcel status"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.ChangeStatus(cmd.Status(), now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.Status(),
		cmd.Description(),
		cmd.Location(),
		cmd.Coordinates(),
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
