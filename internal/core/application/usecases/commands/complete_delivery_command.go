package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the assigned driver finishing a
// delivery run, optionally attaching notes, a proof-of-delivery reference
// and a signature reference. The parcel moves to DELIVERED as a side effect.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      identity.Identity
	completion delivery.Completion

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery run.
func NewCompleteDeliveryCommand(
	deliveryID kernel.UUID,
	actor identity.Identity,
	completion delivery.Completion,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		completion: completion,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setActor(actor),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the acting identity.
func (c CompleteDeliveryCommand) Actor() identity.Identity {
	return c.actor
}

// Completion returns the optional completion artifacts.
func (c CompleteDeliveryCommand) Completion() delivery.Completion {
	return c.completion
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CompleteDeliveryCommand) setActor(actor identity.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
