// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Delete removes a parcel aggregate and, through cascading constraints,
	// its tracking events. The caller is responsible for checking the
	// deletion preconditions before calling.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	// Returns an ObjectNotFoundError when no such parcel exists.
	GetByTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error)

	// ExistsWithTrackingNumber reports whether any parcel already carries
	// the given tracking number. Used by the generation retry loop.
	ExistsWithTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber) (bool, error)
}
