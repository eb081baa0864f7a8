package queries

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler reads the delivery list projection, newest
// first, each entry joined with its parcel summary. The list view carries
// no ping trails; those belong to the single-delivery view.
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesQueryHandler creates a handler for delivery listing.
func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Drivers are scoped to their own assignments; ADMIN sees all; customers
// are rejected with an AccessForbiddenError.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) ([]DeliveryListItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := listDeliveriesRoles.Authorize(query.Actor(), "list deliveries"); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			d.id,
			d.parcel_id,
			d.driver_id,
			d.assigned_at,
			d.started_at,
			d.completed_at,
			d.current_latitude,
			d.current_longitude,
			d.notes,
			d.proof_of_delivery,
			d.signature,
			d.created_at,
			p.id,
			p.tracking_number,
			p.sender_id,
			p.receiver_id,
			p.description,
			p.priority,
			p.pickup_address,
			p.delivery_address,
			p.status,
			p.created_at
		FROM deliveries d
		JOIN parcels p ON p.id = d.parcel_id`
	args := make([]any, 0, 1)

	if query.Actor().Role == identity.RoleDriver {
		sql += ` WHERE d.driver_id = ?`
		args = append(args, query.Actor().SubjectID.Bytes())
	}
	sql += ` ORDER BY d.created_at DESC, d.id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DeliveryListItemResponse, 0)
	for rows.Next() {
		var (
			row             deliveryRow
			parcelID        uuid.UUID
			senderID        uuid.UUID
			receiverID      uuid.UUID
			status          string
			parcelCreatedAt time.Time
			item            DeliveryListItemResponse
		)

		err = rows.Scan(
			&row.id,
			&row.parcelID,
			&row.driverID,
			&row.assignedAt,
			&row.startedAt,
			&row.completedAt,
			&row.currentLatitude,
			&row.currentLongitude,
			&row.notes,
			&row.proofOfDelivery,
			&row.signature,
			&row.createdAt,
			&parcelID,
			&item.Parcel.TrackingNumber,
			&senderID,
			&receiverID,
			&item.Parcel.Description,
			&item.Parcel.Priority,
			&item.Parcel.PickupAddress,
			&item.Parcel.DeliveryAddress,
			&status,
			&parcelCreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if item.Delivery, err = row.toResponse(); err != nil {
			return nil, err
		}
		if item.Parcel.ID, err = scanUUID(parcelID); err != nil {
			return nil, err
		}
		if item.Parcel.SenderID, err = scanUUID(senderID); err != nil {
			return nil, err
		}
		if item.Parcel.ReceiverID, err = scanUUID(receiverID); err != nil {
			return nil, err
		}
		if item.Parcel.Status, err = parcel.StatusFromString(status); err != nil {
			return nil, err
		}
		item.Parcel.CreatedAt = parcelCreatedAt

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
