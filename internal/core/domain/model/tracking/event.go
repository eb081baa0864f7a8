package tracking

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event was not created via
// NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Event is one immutable entry in a parcel's tracking log: the status at the
// time of the event, a human-readable description, an optional location text
// and optional coordinates, with a server-assigned timestamp. Events are
// never updated or deleted; display order is newest first, causal order is
// creation order.
type Event struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	status      parcel.Status
	description string
	location    *string
	coordinates *kernel.Coordinates
	occurredAt  time.Time

	isConstructed bool
}

// NewEvent creates a tracking event. The timestamp is server-assigned by the
// caller; description is required so the log stays human-readable.
func NewEvent(
	id, parcelID kernel.UUID,
	status parcel.Status,
	description string,
	location *string,
	coordinates *kernel.Coordinates,
	occurredAt time.Time,
) (Event, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate(), status.Validate()); err != nil {
		return Event{}, err
	}
	if description == "" {
		return Event{}, errs.NewValueIsRequiredError("description")
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return Event{}, err
		}
	}

	return Event{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		description:   description,
		location:      location,
		coordinates:   coordinates,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence. Used only by
// repository implementations.
func RestoreEvent(
	id, parcelID kernel.UUID,
	status parcel.Status,
	description string,
	location *string,
	coordinates *kernel.Coordinates,
	occurredAt time.Time,
) (Event, error) {
	return NewEvent(id, parcelID, status, description, location, coordinates, occurredAt)
}

// Validate ensures the Event was properly constructed.
func (e Event) Validate() error {
	if !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e Event) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the parcel this event belongs to.
func (e Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// Status returns the parcel status at the time of the event.
func (e Event) Status() parcel.Status {
	return e.status
}

// Description returns the human-readable description.
func (e Event) Description() string {
	return e.description
}

// Location returns the optional free-text location.
func (e Event) Location() *string {
	return e.location
}

// Coordinates returns the optional geographic position.
func (e Event) Coordinates() *kernel.Coordinates {
	return e.coordinates
}

// OccurredAt returns the server-assigned timestamp.
func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
