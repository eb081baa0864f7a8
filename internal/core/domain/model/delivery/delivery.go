package delivery

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Completion carries the optional artifacts recorded when a delivery run
// finishes: free-text notes, a proof-of-delivery reference and a signature
// reference.
type Completion struct {
	Notes           *string
	ProofOfDelivery *string
	Signature       *string
}

// Delivery is the aggregate root for a driver work order. Exactly one
// delivery may exist per parcel; the store enforces this with a unique
// constraint on the parcel reference.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier and owning parcel identifier
//   - assignedAt/startedAt/completedAt are monotonically ordered and
//     startedAt/completedAt are each set at most once
//   - Only the assigned driver passes EnsureAssignedDriver
//   - The denormalized current position tracks the latest location ping
type Delivery struct {
	id       kernel.UUID
	parcelID kernel.UUID
	driverID *kernel.UUID

	assignedAt  *time.Time
	startedAt   *time.Time
	completedAt *time.Time

	currentPosition *kernel.Coordinates
	completion      Completion

	createdAt time.Time

	isConstructed bool
}

// NewDelivery creates an unassigned delivery for a parcel.
func NewDelivery(id, parcelID kernel.UUID, createdAt time.Time) (*Delivery, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		parcelID:      parcelID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence. Used only by
// repository implementations.
func RestoreDelivery(
	id, parcelID kernel.UUID,
	driverID *kernel.UUID,
	assignedAt, startedAt, completedAt *time.Time,
	currentPosition *kernel.Coordinates,
	completion Completion,
	createdAt time.Time,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if currentPosition != nil {
		if err := currentPosition.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:              id,
		parcelID:        parcelID,
		driverID:        driverID,
		assignedAt:      assignedAt,
		startedAt:       startedAt,
		completedAt:     completedAt,
		currentPosition: currentPosition,
		completion:      completion,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ParcelID returns the identifier of the parcel this delivery moves.
func (d *Delivery) ParcelID() kernel.UUID {
	return d.parcelID
}

// DriverID returns the assigned driver's identifier, nil when unassigned.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// AssignedAt returns when a driver was last assigned, nil when unassigned.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// StartedAt returns when the run started, nil if it has not.
func (d *Delivery) StartedAt() *time.Time {
	return d.startedAt
}

// CompletedAt returns when the run completed, nil if it has not.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// CurrentPosition returns the denormalized latest reported position,
// nil before the first location ping.
func (d *Delivery) CurrentPosition() *kernel.Coordinates {
	return d.currentPosition
}

// Completion returns the artifacts recorded on completion.
func (d *Delivery) Completion() Completion {
	return d.completion
}

// CreatedAt returns the server-assigned creation time.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Phase computes the derived progress view from the lifecycle timestamps.
func (d *Delivery) Phase() Phase {
	switch {
	case d.completedAt != nil:
		return PhaseCompleted
	case d.startedAt != nil:
		return PhaseStarted
	case d.driverID != nil:
		return PhaseAssigned
	default:
		return PhaseUnassigned
	}
}

// AssignDriver hands the delivery to a driver and stamps assignedAt.
// Reassignment is allowed while the run has not started; afterwards it
// conflicts, because a mid-route swap would orphan the location trail's
// driver attribution.
func (d *Delivery) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.startedAt != nil {
		return errs.NewStateConflictError("delivery already started, driver cannot be reassigned")
	}

	d.driverID = &driverID
	stamp := now
	d.assignedAt = &stamp
	return nil
}

// EnsureAssignedDriver checks that the actor is the delivery's assigned
// driver. Returns an AccessForbiddenError otherwise, including when no
// driver is assigned at all.
func (d *Delivery) EnsureAssignedDriver(actor identity.Identity) error {
	if d.driverID == nil || !d.driverID.IsEqual(actor.SubjectID) {
		return errs.NewAccessForbiddenError("only the assigned driver may act on this delivery")
	}
	return nil
}

// Start stamps startedAt. Conflicts when the run has already started.
func (d *Delivery) Start(now time.Time) error {
	if d.startedAt != nil {
		return errs.NewStateConflictError("delivery already started")
	}

	stamp := now
	d.startedAt = &stamp
	return nil
}

// Complete stamps completedAt and records the completion artifacts.
// Conflicts when the run has already completed.
func (d *Delivery) Complete(now time.Time, completion Completion) error {
	if d.completedAt != nil {
		return errs.NewStateConflictError("delivery already completed")
	}

	stamp := now
	d.completedAt = &stamp
	d.completion = completion
	return nil
}

// RecordPosition refreshes the denormalized current coordinates. The
// corresponding location ping is appended by the calling handler in the same
// transaction, keeping the two in step.
func (d *Delivery) RecordPosition(position kernel.Coordinates) error {
	if err := position.Validate(); err != nil {
		return err
	}

	d.currentPosition = &position
	return nil
}
