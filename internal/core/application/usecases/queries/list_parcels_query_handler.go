package queries

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler reads the parcel list projection. Newest parcels
// come first.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for parcel listing.
// Requires a GORM database connection for query execution.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the query.
// Customers are scoped to parcels they send or receive; the optional
// status filter applies on top.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) ([]ParcelSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			tracking_number,
			sender_id,
			receiver_id,
			description,
			priority,
			pickup_address,
			delivery_address,
			status,
			created_at
		FROM parcels
		WHERE 1 = 1`
	args := make([]any, 0, 3)

	if query.Actor().Role == identity.RoleCustomer {
		sql += ` AND (sender_id = ? OR receiver_id = ?)`
		actorID := query.Actor().SubjectID.Bytes()
		args = append(args, actorID, actorID)
	}
	if query.Status() != nil {
		sql += ` AND status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY created_at DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelSummaryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			senderID   uuid.UUID
			receiverID uuid.UUID
			status     string
			createdAt  time.Time
			summary    ParcelSummaryResponse
		)

		err = rows.Scan(
			&id,
			&summary.TrackingNumber,
			&senderID,
			&receiverID,
			&summary.Description,
			&summary.Priority,
			&summary.PickupAddress,
			&summary.DeliveryAddress,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = scanUUID(id); err != nil {
			return nil, err
		}
		if summary.SenderID, err = scanUUID(senderID); err != nil {
			return nil, err
		}
		if summary.ReceiverID, err = scanUUID(receiverID); err != nil {
			return nil, err
		}
		if summary.Status, err = parcel.StatusFromString(status); err != nil {
			return nil, err
		}
		summary.CreatedAt = createdAt

		parcels = append(parcels, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
