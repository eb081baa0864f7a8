package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage. The store enforces
	// at most one delivery per parcel with a unique constraint; a violation
	// surfaces as a StateConflictError.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByParcelID retrieves the delivery attached to a parcel.
	// Returns an ObjectNotFoundError when the parcel has no delivery.
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*delivery.Delivery, error)
}
