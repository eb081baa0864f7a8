package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through the NewParcel or RestoreParcel factory functions.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

// Details groups the descriptive attributes supplied by the sender at
// creation time. It is a value object validated as a whole.
type Details struct {
	Description         string
	WeightKG            float64
	Dimensions          string
	DeclaredValue       float64
	Priority            Priority
	PickupAddress       string
	DeliveryAddress     string
	SpecialInstructions string
	EstimatedDelivery   *time.Time
}

// Validate checks the sender-supplied attributes: description and both
// addresses are required, weight must be positive, declared value
// non-negative, priority one of the three service levels.
func (d Details) Validate() error {
	var err error
	if d.Description == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("description"))
	}
	if d.WeightKG <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("weightKG",
			fmt.Errorf("%g is not greater than 0", d.WeightKG)))
	}
	if d.DeclaredValue < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("declaredValue",
			fmt.Errorf("%g is negative", d.DeclaredValue)))
	}
	if d.PickupAddress == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("pickupAddress"))
	}
	if d.DeliveryAddress == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("deliveryAddress"))
	}
	if validateErr := d.Priority.Validate(); validateErr != nil {
		err = errors.Join(err, validateErr)
	}
	return err
}

// Parcel is the aggregate root for a shippable item. It owns the parcel's
// identity, descriptive attributes, parties and lifecycle status.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and tracking number
//   - Must have valid sender and receiver identities
//   - Details must pass validation (positive weight, required addresses)
//   - Status is one of the seven lifecycle states; DELIVERED/FAILED/CANCELLED
//     are terminal
//   - Can only be created through NewParcel or RestoreParcel
//
// The current status field is a derived "latest value" cache of the tracking
// event log; command handlers keep the two in sync by pairing every
// ChangeStatus with an event append inside one transaction.
type Parcel struct {
	id             kernel.UUID
	trackingNumber TrackingNumber
	senderID       kernel.UUID
	receiverID     kernel.UUID
	details        Details
	status         Status

	createdAt    time.Time
	pickupDate   *time.Time
	deliveryDate *time.Time

	isConstructed bool
}

// NewParcel creates a parcel in PENDING status on behalf of the sender.
// All inputs are validated; the caller supplies a collision-checked tracking
// number and the server-assigned creation time.
func NewParcel(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	details Details,
	createdAt time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingNumber.Validate(),
		senderID.Validate(),
		receiverID.Validate(),
		details.Validate(),
	); err != nil {
		return nil, err
	}

	return &Parcel{
		id:             id,
		trackingNumber: trackingNumber,
		senderID:       senderID,
		receiverID:     receiverID,
		details:        details,
		status:         StatusPending,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// RestoreParcel reconstructs a parcel from persistence, including its current
// status and lifecycle timestamps. Used only by repository implementations.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	details Details,
	status Status,
	createdAt time.Time,
	pickupDate *time.Time,
	deliveryDate *time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingNumber.Validate(),
		senderID.Validate(),
		receiverID.Validate(),
		details.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Parcel{
		id:             id,
		trackingNumber: trackingNumber,
		senderID:       senderID,
		receiverID:     receiverID,
		details:        details,
		status:         status,
		createdAt:      createdAt,
		pickupDate:     pickupDate,
		deliveryDate:   deliveryDate,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the parcel's public tracking number.
func (p *Parcel) TrackingNumber() TrackingNumber {
	return p.trackingNumber
}

// SenderID returns the identity of the customer who created the parcel.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// ReceiverID returns the identity of the customer receiving the parcel.
func (p *Parcel) ReceiverID() kernel.UUID {
	return p.receiverID
}

// Details returns the descriptive attributes supplied at creation.
func (p *Parcel) Details() Details {
	return p.details
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// CreatedAt returns the server-assigned creation time.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// PickupDate returns when the parcel was picked up, nil if it has not been.
func (p *Parcel) PickupDate() *time.Time {
	return p.pickupDate
}

// DeliveryDate returns when the parcel was delivered, nil if it has not been.
func (p *Parcel) DeliveryDate() *time.Time {
	return p.deliveryDate
}

// ChangeStatus moves the parcel to the target status and stamps the
// corresponding lifecycle date: pickupDate for PICKED_UP, deliveryDate for
// DELIVERED.
//
// The target is not checked against a forward-transition table: status
// corrections by administrators and drivers are permitted, and every change
// is paired with an append to the tracking log by the calling handler, so the
// history stays auditable even across a correction.
func (p *Parcel) ChangeStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	p.status = target

	switch target {
	case StatusPickedUp:
		stamp := now
		p.pickupDate = &stamp
	case StatusDelivered:
		stamp := now
		p.deliveryDate = &stamp
	default:
	}

	return nil
}

// IsVisibleTo reports whether the actor may read this parcel. Customers see
// only parcels where they are sender or receiver; drivers and administrators
// see all.
func (p *Parcel) IsVisibleTo(actor identity.Identity) bool {
	if actor.Role != identity.RoleCustomer {
		return true
	}
	return p.senderID.IsEqual(actor.SubjectID) || p.receiverID.IsEqual(actor.SubjectID)
}

// EnsureVisibleTo returns an AccessForbiddenError when IsVisibleTo is false.
func (p *Parcel) EnsureVisibleTo(actor identity.Identity) error {
	if !p.IsVisibleTo(actor) {
		return errs.NewAccessForbiddenError("parcel is not visible to this user")
	}
	return nil
}

// EnsureDeletableBy checks the deletion preconditions: the actor must be the
// sender and the parcel must still be PENDING.
func (p *Parcel) EnsureDeletableBy(actor identity.Identity) error {
	if !p.senderID.IsEqual(actor.SubjectID) {
		return errs.NewAccessForbiddenError("only the sender can delete this parcel")
	}
	if p.status != StatusPending {
		return errs.NewStateConflictErrorWithCause("parcel",
			fmt.Errorf("only pending parcels can be deleted, status is %s", p.status))
	}
	return nil
}
