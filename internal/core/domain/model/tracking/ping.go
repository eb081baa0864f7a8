package tracking

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// ErrPingIsNotConstructed is returned when a Ping was not created via
// NewPing or RestorePing.
var ErrPingIsNotConstructed = errors.New("Ping must be created via NewPing or RestorePing")

// Ping is one immutable position sample in a delivery's location trail.
// Pings accumulate without bound in the store; readers retrieve only a
// bounded recency window (see the query handlers). Like events, pings are
// never updated or deleted.
type Ping struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	position   kernel.Coordinates
	accuracy   *float64
	recordedAt time.Time

	isConstructed bool
}

// NewPing creates a location ping. Accuracy, when supplied, is meters and
// must be non-negative.
func NewPing(
	id, deliveryID kernel.UUID,
	position kernel.Coordinates,
	accuracy *float64,
	recordedAt time.Time,
) (Ping, error) {
	if err := errors.Join(id.Validate(), deliveryID.Validate(), position.Validate()); err != nil {
		return Ping{}, err
	}
	if accuracy != nil && *accuracy < 0 {
		return Ping{}, errs.NewValueIsInvalidErrorWithCause("accuracy",
			fmt.Errorf("%g is negative", *accuracy))
	}

	return Ping{
		id:            id,
		deliveryID:    deliveryID,
		position:      position,
		accuracy:      accuracy,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// RestorePing reconstructs a ping from persistence. Used only by repository
// implementations.
func RestorePing(
	id, deliveryID kernel.UUID,
	position kernel.Coordinates,
	accuracy *float64,
	recordedAt time.Time,
) (Ping, error) {
	return NewPing(id, deliveryID, position, accuracy, recordedAt)
}

// Validate ensures the Ping was properly constructed.
func (p Ping) Validate() error {
	if !p.isConstructed {
		return ErrPingIsNotConstructed
	}
	return nil
}

// ID returns the ping's unique identifier.
func (p Ping) ID() kernel.UUID {
	return p.id
}

// DeliveryID returns the delivery this ping belongs to.
func (p Ping) DeliveryID() kernel.UUID {
	return p.deliveryID
}

// Position returns the sampled coordinates.
func (p Ping) Position() kernel.Coordinates {
	return p.position
}

// Accuracy returns the optional accuracy in meters.
func (p Ping) Accuracy() *float64 {
	return p.accuracy
}

// RecordedAt returns the server-assigned timestamp.
func (p Ping) RecordedAt() time.Time {
	return p.recordedAt
}
