// Package trackingrepo persists the append-only tracking log: status events
// on parcels and location pings on deliveries. Both tables are insert-only;
// rows disappear only through the cascading foreign keys when their parent
// parcel or delivery is removed.
package trackingrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting tracking events.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"type:varchar(24)"`
	Description string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	OccurredAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking events.
func (EventDTO) TableName() string {
	return "tracking_events"
}

// eventFromDomain converts a tracking event to its database representation.
func eventFromDomain(event tracking.Event) EventDTO {
	var latitude, longitude *float64
	if coordinates := event.Coordinates(); coordinates != nil {
		lat := coordinates.Latitude()
		lon := coordinates.Longitude()
		latitude = &lat
		longitude = &lon
	}

	return EventDTO{
		ID:          event.ID().Bytes(),
		ParcelID:    event.ParcelID().Bytes(),
		Status:      event.Status().String(),
		Description: event.Description(),
		Location:    event.Location(),
		Latitude:    latitude,
		Longitude:   longitude,
		OccurredAt:  event.OccurredAt(),
	}
}

// PingDTO represents the database structure for persisting location pings.
type PingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;index"`
	Latitude   float64
	Longitude  float64
	Accuracy   *float64
	RecordedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for location pings.
func (PingDTO) TableName() string {
	return "location_pings"
}

// pingFromDomain converts a location ping to its database representation.
func pingFromDomain(ping tracking.Ping) PingDTO {
	return PingDTO{
		ID:         ping.ID().Bytes(),
		DeliveryID: ping.DeliveryID().Bytes(),
		Latitude:   ping.Position().Latitude(),
		Longitude:  ping.Position().Longitude(),
		Accuracy:   ping.Accuracy(),
		RecordedAt: ping.RecordedAt(),
	}
}
