package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// CreateDeliveryCommandHandler opens delivery work orders. When a driver is
// supplied up front, the assignment side effects (parcel to IN_TRANSIT plus
// the tracking event) happen in the same transaction as the insert.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for opening deliveries.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
// Rejects a second delivery for the same parcel with a conflict; the unique
// constraint on the parcel column backs the check under concurrency.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := createDeliveryRoles.Authorize(cmd.Actor(), "create delivery"); err != nil {
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
	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	_, err = deliveryRepo.GetByParcelID(ctx, aggregate.ID())
	if err == nil {
		return errs.NewStateConflictError("parcel already has a delivery")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	now := time.Now().UTC()
	newDelivery, err := delivery.NewDelivery(cmd.DeliveryID(), aggregate.ID(), now)
	if err != nil {
		return err
	}

	if cmd.DriverID() != nil {
		driver, err := h.resolveDriver(ctx, uow.UserRepository(), *cmd.DriverID())
		if err != nil {
			return err
		}

		if err = h.applyAssignment(ctx, uow, newDelivery, aggregate, driver, now); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Add(ctx, newDelivery); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveDriver loads the assignment target and checks that it actually
// holds the DRIVER role. A missing or non-driver user is the caller's
// mistake, so both map to a ValueIsInvalidError rather than a not-found.
func (h CreateDeliveryCommandHandler) resolveDriver(
	ctx context.Context,
	userRepo ports.UserRepository,
	driverID kernel.UUID,
) (identity.User, error) {
	driver, err := userRepo.Get(ctx, driverID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return identity.User{}, errs.NewValueIsInvalidErrorWithCause("driverId", err)
	}
	if err != nil {
		return identity.User{}, err
	}

	if !driver.IsDriver() {
		return identity.User{}, errs.NewValueIsInvalidError("driverId")
	}

	return driver, nil
}

func (h CreateDeliveryCommandHandler) applyAssignment(
	ctx context.Context,
	uow UoW,
	newDelivery *delivery.Delivery,
	aggregate *parcel.Parcel,
	driver identity.User,
	now time.Time,
) error {
	if err := newDelivery.AssignDriver(driver.ID, now); err != nil {
		return err
	}

	if err := aggregate.ChangeStatus(parcel.StatusInTransit, now); err != nil {
		return err
	}

	if err := uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		parcel.StatusInTransit,
		fmt.Sprintf("Delivery assigned to %s %s", driver.FirstName, driver.LastName),
		nil,
		nil,
		now,
	)
	if err != nil {
		return err
	}

	return uow.TrackingLog().AppendEvent(ctx, event)
}
