package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery retrieves the parcels visible to the actor, optionally
// filtered by status. Customers get the parcels they send or receive;
// ADMIN and DRIVER get everything.
type ListParcelsQuery struct {
	actor  identity.Identity
	status *parcel.Status

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a query to list visible parcels.
// The status filter is optional.
func NewListParcelsQuery(actor identity.Identity, status *parcel.Status) (ListParcelsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListParcelsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	return ListParcelsQuery{
		actor:  actor,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q ListParcelsQuery) Actor() identity.Identity {
	return q.actor
}

// Status returns the optional status filter.
func (q ListParcelsQuery) Status() *parcel.Status {
	return q.status
}
