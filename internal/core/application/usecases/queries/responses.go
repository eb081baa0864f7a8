// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and repositories, reading
// denormalized projections straight from the database with raw SQL. The
// recency windows on tracking data are enforced here.
package queries

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// Recency windows for tracking data. The parcel view carries a short tail
// of pings for the map widget; the delivery view carries the larger window
// used by dispatch.
const (
	ParcelPingWindow   = 10
	DeliveryPingWindow = 50
)

// ParcelResponse is the read model for a single parcel, including its full
// event log (newest first) and, when a delivery exists, its progress and
// the recent location trail.
type ParcelResponse struct {
	ID                  kernel.UUID
	TrackingNumber      string
	SenderID            kernel.UUID
	ReceiverID          kernel.UUID
	Description         string
	WeightKG            float64
	Dimensions          string
	DeclaredValue       float64
	Priority            string
	PickupAddress       string
	DeliveryAddress     string
	SpecialInstructions string
	EstimatedDelivery   *time.Time
	Status              parcel.Status
	PickupDate          *time.Time
	DeliveryDate        *time.Time
	CreatedAt           time.Time

	Events   []TrackingEventResponse
	Delivery *DeliveryResponse
}

// ParcelSummaryResponse is the compact parcel read model used by list
// endpoints and embedded in delivery views.
type ParcelSummaryResponse struct {
	ID              kernel.UUID
	TrackingNumber  string
	SenderID        kernel.UUID
	ReceiverID      kernel.UUID
	Description     string
	Priority        string
	PickupAddress   string
	DeliveryAddress string
	Status          parcel.Status
	CreatedAt       time.Time
}

// TrackingEventResponse is one entry of a parcel's event log.
type TrackingEventResponse struct {
	ID          kernel.UUID
	Status      parcel.Status
	Description string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	OccurredAt  time.Time
}

// DeliveryResponse is the read model for a delivery work order with its
// recent location trail.
type DeliveryResponse struct {
	ID               kernel.UUID
	ParcelID         kernel.UUID
	DriverID         *kernel.UUID
	Phase            string
	AssignedAt       *time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CurrentLatitude  *float64
	CurrentLongitude *float64
	Notes            *string
	ProofOfDelivery  *string
	Signature        *string
	CreatedAt        time.Time

	Pings []LocationPingResponse
}

// LocationPingResponse is one position sample from a delivery's trail.
type LocationPingResponse struct {
	ID         kernel.UUID
	Latitude   float64
	Longitude  float64
	Accuracy   *float64
	RecordedAt time.Time
}
