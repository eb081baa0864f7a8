package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel with its full event log (newest
// first) and, when a delivery exists, its progress and the recent location
// trail. Customers only see parcels they send or receive.
type GetParcelQuery struct {
	parcelID kernel.UUID
	actor    identity.Identity

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query to retrieve a parcel by identifier.
func NewGetParcelQuery(parcelID kernel.UUID, actor identity.Identity) (GetParcelQuery, error) {
	if err := errors.Join(parcelID.Validate(), actor.Validate()); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID: parcelID,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the requested parcel's identifier.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// Actor returns the acting identity.
func (q GetParcelQuery) Actor() identity.Identity {
	return q.actor
}
