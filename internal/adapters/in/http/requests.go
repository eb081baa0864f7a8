package http

import "time"

// errorBody is the JSON error payload shared by all endpoints.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createParcelRequest struct {
	ReceiverID          string     `json:"receiverId"`
	Description         string     `json:"description"`
	WeightKG            float64    `json:"weightKg"`
	Dimensions          string     `json:"dimensions"`
	DeclaredValue       float64    `json:"declaredValue"`
	Priority            string     `json:"priority"`
	PickupAddress       string     `json:"pickupAddress"`
	DeliveryAddress     string     `json:"deliveryAddress"`
	SpecialInstructions string     `json:"specialInstructions"`
	EstimatedDelivery   *time.Time `json:"estimatedDelivery"`
}

type updateParcelStatusRequest struct {
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type createDeliveryRequest struct {
	ParcelID string  `json:"parcelId"`
	DriverID *string `json:"driverId"`
}

type assignDriverRequest struct {
	DriverID string `json:"driverId"`
}

type completeDeliveryRequest struct {
	Notes           *string `json:"notes"`
	ProofOfDelivery *string `json:"proofOfDelivery"`
	Signature       *string `json:"signature"`
}

type updateLocationRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
}
