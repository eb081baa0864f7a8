package commands

import (
	"context"
	"errors"

	"parceltrack/internal/pkg/errs"
)

// DeleteParcelCommandHandler handles parcel deletion. Deletion is only a
// correction mechanism for parcels registered by mistake, hence the strict
// preconditions checked here.
type DeleteParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory UoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Verifies the actor is the sender, the parcel is still PENDING and no
// delivery has been attached, then removes the parcel together with its
// tracking events.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
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

	if err = aggregate.EnsureDeletableBy(cmd.Actor()); err != nil {
		return err
	}

	_, err = uow.DeliveryRepository().GetByParcelID(ctx, aggregate.ID())
	if err == nil {
		return errs.NewStateConflictError("parcel with a delivery cannot be deleted")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = parcelRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
