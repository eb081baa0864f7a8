package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelByTrackingNumberQueryHandler resolves the public tracking number
// to the same single-parcel projection as the lookup by identifier.
type GetParcelByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByTrackingNumberQueryHandler creates a handler for tracking
// number lookups.
func NewGetParcelByTrackingNumberQueryHandler(db *gorm.DB) GetParcelByTrackingNumberQueryHandler {
	return GetParcelByTrackingNumberQueryHandler{db: db}
}

// Handle executes the query.
func (h GetParcelByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByTrackingNumberQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	return fetchParcelView(ctx, h.db, query.Actor(), "tracking_number = ?", query.TrackingNumber().String())
}
