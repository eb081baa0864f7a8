package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to open a delivery work order
// for a parcel, optionally assigning a driver in the same step. Restricted
// to the ADMIN role; at most one delivery may exist per parcel.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      identity.Identity
	parcelID   kernel.UUID
	driverID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to open a delivery.
// The driver identifier is optional; when present the delivery is assigned
// immediately and the parcel moves to IN_TRANSIT.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	actor identity.Identity,
	parcelID kernel.UUID,
	driverID *kernel.UUID,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setActor(actor),
		cmd.setParcelID(parcelID),
		cmd.setDriverID(driverID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the acting identity.
func (c CreateDeliveryCommand) Actor() identity.Identity {
	return c.actor
}

// ParcelID returns the parcel the delivery will move.
func (c CreateDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// DriverID returns the optional driver to assign immediately.
func (c CreateDeliveryCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setActor(actor identity.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateDeliveryCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateDeliveryCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.driverID = driverID
	return nil
}
