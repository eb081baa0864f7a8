package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand represents a position report from the assigned
// driver. Appends one ping to the delivery's location trail and refreshes
// the denormalized current position; the parcel's status is untouched.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      identity.Identity
	position   kernel.Coordinates
	accuracy   *float64

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command to record a driver position.
// Accuracy, when supplied, is meters and must be non-negative.
func NewUpdateLocationCommand(
	deliveryID kernel.UUID,
	actor identity.Identity,
	position kernel.Coordinates,
	accuracy *float64,
) (UpdateLocationCommand, error) {
	cmd := UpdateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setActor(actor),
		cmd.setPosition(position),
		cmd.setAccuracy(accuracy),
	); err != nil {
		return UpdateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c UpdateLocationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the acting identity.
func (c UpdateLocationCommand) Actor() identity.Identity {
	return c.actor
}

// Position returns the reported coordinates.
func (c UpdateLocationCommand) Position() kernel.Coordinates {
	return c.position
}

// Accuracy returns the optional accuracy in meters.
func (c UpdateLocationCommand) Accuracy() *float64 {
	return c.accuracy
}

func (c *UpdateLocationCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateLocationCommand) setActor(actor identity.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateLocationCommand) setPosition(position kernel.Coordinates) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}

func (c *UpdateLocationCommand) setAccuracy(accuracy *float64) error {
	if accuracy != nil && *accuracy < 0 {
		return errs.NewValueIsInvalidError("accuracy")
	}

	c.accuracy = accuracy
	return nil
}
