package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery retrieves delivery work orders. Drivers get their own
// assignments; ADMIN gets everything. Customers have no delivery list, they
// follow their parcels instead.
type ListDeliveriesQuery struct {
	actor identity.Identity

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a query to list deliveries.
func NewListDeliveriesQuery(actor identity.Identity) (ListDeliveriesQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListDeliveriesQuery{}, err
	}

	return ListDeliveriesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q ListDeliveriesQuery) Actor() identity.Identity {
	return q.actor
}

// DeliveryListItemResponse is one entry of the delivery list: the work
// order joined with a summary of the parcel it moves.
type DeliveryListItemResponse struct {
	Delivery DeliveryResponse
	Parcel   ParcelSummaryResponse
}
