package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// AssignDriverCommandHandler hands deliveries to drivers. Assignment moves
// the parcel to IN_TRANSIT and records who got the route in the tracking
// log, all in one transaction.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// The target user must exist and hold the DRIVER role; anything else is the
// caller's mistake and maps to a ValueIsInvalidError. Reassignment after
// the run started conflicts.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := assignDriverRoles.Authorize(cmd.Actor(), "assign driver"); err != nil {
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

	driver, err := h.resolveDriver(ctx, uow.UserRepository(), cmd.DriverID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.AssignDriver(driver.ID, now); err != nil {
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

	if err = movedParcel.ChangeStatus(parcel.StatusInTransit, now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, movedParcel); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		movedParcel.ID(),
		parcel.StatusInTransit,
		fmt.Sprintf("Delivery assigned to %s %s", driver.FirstName, driver.LastName),
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

func (h AssignDriverCommandHandler) resolveDriver(
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
