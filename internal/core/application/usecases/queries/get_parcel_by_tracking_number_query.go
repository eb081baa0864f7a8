package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelByTrackingNumberQueryIsNotConstructed = errors.New(
	"GetParcelByTrackingNumberQuery must be created via NewGetParcelByTrackingNumberQuery constructor",
)

// GetParcelByTrackingNumberQuery retrieves a parcel by its public tracking
// number. The response and the visibility rule are identical to the lookup
// by identifier.
type GetParcelByTrackingNumberQuery struct {
	trackingNumber parcel.TrackingNumber
	actor          identity.Identity

	guard guard.ConstructorGuard
}

// NewGetParcelByTrackingNumberQuery creates a query to retrieve a parcel by
// tracking number.
func NewGetParcelByTrackingNumberQuery(
	trackingNumber parcel.TrackingNumber,
	actor identity.Identity,
) (GetParcelByTrackingNumberQuery, error) {
	if err := errors.Join(trackingNumber.Validate(), actor.Validate()); err != nil {
		return GetParcelByTrackingNumberQuery{}, err
	}

	return GetParcelByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		actor:          actor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the requested tracking number.
func (q GetParcelByTrackingNumberQuery) TrackingNumber() parcel.TrackingNumber {
	return q.trackingNumber
}

// Actor returns the acting identity.
func (q GetParcelByTrackingNumberQuery) Actor() identity.Identity {
	return q.actor
}
