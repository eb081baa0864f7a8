package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/queries"
)

type parcelView struct {
	ID                  string     `json:"id"`
	TrackingNumber      string     `json:"trackingNumber"`
	SenderID            string     `json:"senderId"`
	ReceiverID          string     `json:"receiverId"`
	Description         string     `json:"description"`
	WeightKG            float64    `json:"weightKg"`
	Dimensions          string     `json:"dimensions,omitempty"`
	DeclaredValue       float64    `json:"declaredValue"`
	Priority            string     `json:"priority"`
	PickupAddress       string     `json:"pickupAddress"`
	DeliveryAddress     string     `json:"deliveryAddress"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
	EstimatedDelivery   *time.Time `json:"estimatedDelivery,omitempty"`
	Status              string     `json:"status"`
	PickupDate          *time.Time `json:"pickupDate,omitempty"`
	DeliveryDate        *time.Time `json:"deliveryDate,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`

	Events   []trackingEventView `json:"events"`
	Delivery *deliveryView       `json:"delivery,omitempty"`
}

type parcelSummaryView struct {
	ID              string    `json:"id"`
	TrackingNumber  string    `json:"trackingNumber"`
	SenderID        string    `json:"senderId"`
	ReceiverID      string    `json:"receiverId"`
	Description     string    `json:"description"`
	Priority        string    `json:"priority"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type trackingEventView struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    *string   `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type deliveryView struct {
	ID               string     `json:"id"`
	ParcelID         string     `json:"parcelId"`
	DriverID         *string    `json:"driverId,omitempty"`
	Phase            string     `json:"phase"`
	AssignedAt       *time.Time `json:"assignedAt,omitempty"`
	StartedAt        *time.Time `json:"startedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CurrentLatitude  *float64   `json:"currentLatitude,omitempty"`
	CurrentLongitude *float64   `json:"currentLongitude,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	ProofOfDelivery  *string    `json:"proofOfDelivery,omitempty"`
	Signature        *string    `json:"signature,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`

	Pings []locationPingView `json:"pings"`
}

type deliveryListItemView struct {
	Delivery deliveryView      `json:"delivery"`
	Parcel   parcelSummaryView `json:"parcel"`
}

type locationPingView struct {
	ID         string    `json:"id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

func toParcelView(response queries.ParcelResponse) parcelView {
	events := make([]trackingEventView, len(response.Events))
	for i, event := range response.Events {
		events[i] = toTrackingEventView(event)
	}

	var deliverySection *deliveryView
	if response.Delivery != nil {
		view := toDeliveryView(*response.Delivery)
		deliverySection = &view
	}

	return parcelView{
		ID:                  response.ID.String(),
		TrackingNumber:      response.TrackingNumber,
		SenderID:            response.SenderID.String(),
		ReceiverID:          response.ReceiverID.String(),
		Description:         response.Description,
		WeightKG:            response.WeightKG,
		Dimensions:          response.Dimensions,
		DeclaredValue:       response.DeclaredValue,
		Priority:            response.Priority,
		PickupAddress:       response.PickupAddress,
		DeliveryAddress:     response.DeliveryAddress,
		SpecialInstructions: response.SpecialInstructions,
		EstimatedDelivery:   response.EstimatedDelivery,
		Status:              response.Status.String(),
		PickupDate:          response.PickupDate,
		DeliveryDate:        response.DeliveryDate,
		CreatedAt:           response.CreatedAt,
		Events:              events,
		Delivery:            deliverySection,
	}
}

func toParcelSummaryView(response queries.ParcelSummaryResponse) parcelSummaryView {
	return parcelSummaryView{
		ID:              response.ID.String(),
		TrackingNumber:  response.TrackingNumber,
		SenderID:        response.SenderID.String(),
		ReceiverID:      response.ReceiverID.String(),
		Description:     response.Description,
		Priority:        response.Priority,
		PickupAddress:   response.PickupAddress,
		DeliveryAddress: response.DeliveryAddress,
		Status:          response.Status.String(),
		CreatedAt:       response.CreatedAt,
	}
}

func toTrackingEventView(response queries.TrackingEventResponse) trackingEventView {
	return trackingEventView{
		ID:          response.ID.String(),
		Status:      response.Status.String(),
		Description: response.Description,
		Location:    response.Location,
		Latitude:    response.Latitude,
		Longitude:   response.Longitude,
		OccurredAt:  response.OccurredAt,
	}
}

func toDeliveryView(response queries.DeliveryResponse) deliveryView {
	var driverID *string
	if response.DriverID != nil {
		s := response.DriverID.String()
		driverID = &s
	}

	pings := make([]locationPingView, len(response.Pings))
	for i, ping := range response.Pings {
		pings[i] = locationPingView{
			ID:         ping.ID.String(),
			Latitude:   ping.Latitude,
			Longitude:  ping.Longitude,
			Accuracy:   ping.Accuracy,
			RecordedAt: ping.RecordedAt,
		}
	}

	return deliveryView{
		ID:               response.ID.String(),
		ParcelID:         response.ParcelID.String(),
		DriverID:         driverID,
		Phase:            response.Phase,
		AssignedAt:       response.AssignedAt,
		StartedAt:        response.StartedAt,
		CompletedAt:      response.CompletedAt,
		CurrentLatitude:  response.CurrentLatitude,
		CurrentLongitude: response.CurrentLongitude,
		Notes:            response.Notes,
		ProofOfDelivery:  response.ProofOfDelivery,
		Signature:        response.Signature,
		CreatedAt:        response.CreatedAt,
		Pings:            pings,
	}
}
