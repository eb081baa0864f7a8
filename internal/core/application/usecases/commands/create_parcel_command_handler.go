package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
)

// maxTrackingNumberAttempts bounds the generate-and-check loop. The
// timestamp component makes collisions rare; the unique index on the
// column catches the race that slips past the check.
const maxTrackingNumberAttempts = 5

var ErrTrackingNumberExhausted = errors.New("could not generate a unique tracking number")

// CreateParcelCommandHandler handles the business logic for parcel
// registration: tracking number generation, the initial PENDING status
// and the first tracking event, persisted in one transaction.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// Generates a unique tracking number, creates the parcel in PENDING status
// and appends the creation event to the tracking log atomically.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
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
	trackingLog := uow.TrackingLog()
	now := time.Now().UTC()

	trackingNumber, err := h.generateTrackingNumber(ctx, parcelRepo, now)
	if err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		trackingNumber,
		cmd.Actor().SubjectID,
		cmd.ReceiverID(),
		cmd.Details(),
		now,
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Add(ctx, newParcel); err != nil {
		return err
	}

	pickupAddress := newParcel.Details().PickupAddress
	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		newParcel.ID(),
		parcel.StatusPending,
		"Parcel created and awaiting pickup",
		&pickupAddress,
		nil,
		now,
	)
	if err != nil {
		return err
	}

	if err = trackingLog.AppendEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h CreateParcelCommandHandler) generateTrackingNumber(
	ctx context.Context,
	parcelRepo ports.ParcelRepository,
	now time.Time,
) (parcel.TrackingNumber, error) {
	for range maxTrackingNumberAttempts {
		candidate := parcel.GenerateTrackingNumber(now)

		taken, err := parcelRepo.ExistsWithTrackingNumber(ctx, candidate)
		if err != nil {
			return parcel.TrackingNumber{}, err
		}
		if !taken {
			return candidate, nil
		}
	}

	return parcel.TrackingNumber{}, ErrTrackingNumberExhausted
}
