package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelQueryHandler reads the single-parcel projection from the
// database: the parcel row, its event log and the attached delivery with
// the short ping window.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel queries.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when no such parcel exists and an
// AccessForbiddenError when a customer asks for someone else's parcel.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	return fetchParcelView(ctx, h.db, query.Actor(), "id = ?", query.ParcelID().Bytes())
}
