package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves one delivery with its parcel summary and the
// wide ping window. Drivers only see their own assignments; customers only
// the deliveries of parcels they send or receive.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID
	actor      identity.Identity

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query to retrieve a delivery by identifier.
func NewGetDeliveryQuery(deliveryID kernel.UUID, actor identity.Identity) (GetDeliveryQuery, error) {
	if err := errors.Join(deliveryID.Validate(), actor.Validate()); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery's identifier.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// Actor returns the acting identity.
func (q GetDeliveryQuery) Actor() identity.Identity {
	return q.actor
}

// GetDeliveryResponse is the single-delivery read model: the work order
// with its recent location trail plus a summary of the parcel it moves.
type GetDeliveryResponse struct {
	Delivery DeliveryResponse
	Parcel   ParcelSummaryResponse
}
