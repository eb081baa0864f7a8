package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a request to move a parcel to a new
// status and append the matching tracking event. Restricted to ADMIN and
// DRIVER roles.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	actor       identity.Identity
	status      parcel.Status
	description string
	location    *string
	coordinates *kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to change a parcel's status.
// Location and coordinates are optional context for the tracking event;
// the description is required so the log stays meaningful.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	actor identity.Identity,
	status parcel.Status,
	description string,
	location *string,
	coordinates *kernel.Coordinates,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActor(actor),
		cmd.setStatus(status),
		cmd.setDescription(description),
		cmd.setCoordinates(coordinates),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the target parcel's identifier.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Actor returns the acting identity.
func (c UpdateParcelStatusCommand) Actor() identity.Identity {
	return c.actor
}

// Status returns the requested target status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

// Description returns the tracking event description.
func (c UpdateParcelStatusCommand) Description() string {
	return c.description
}

// Location returns the optional free-text location for the event.
func (c UpdateParcelStatusCommand) Location() *string {
	return c.location
}

// Coordinates returns the optional geographic position for the event.
func (c UpdateParcelStatusCommand) Coordinates() *kernel.Coordinates {
	return c.coordinates
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setActor(actor identity.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateParcelStatusCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *UpdateParcelStatusCommand) setCoordinates(coordinates *kernel.Coordinates) error {
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return err
		}
	}

	c.coordinates = coordinates
	return nil
}
