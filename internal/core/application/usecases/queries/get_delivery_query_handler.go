package queries

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads the single-delivery projection: the
// delivery joined with its parcel summary plus the wide ping window.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery queries.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query.
// ADMIN sees any delivery; a driver only their own assignment; a customer
// only deliveries of parcels they send or receive.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (GetDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		JOIN parcels p ON p.id = d.parcel_id
		WHERE d.id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return GetDeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDeliveryResponse{}, err
		}
		return GetDeliveryResponse{}, errs.NewObjectNotFoundError("deliveryId", query.DeliveryID())
	}

	var (
		row             deliveryRow
		parcelID        uuid.UUID
		senderID        uuid.UUID
		receiverID      uuid.UUID
		status          string
		parcelCreatedAt time.Time
		response        GetDeliveryResponse
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
		&response.Parcel.TrackingNumber,
		&senderID,
		&receiverID,
		&response.Parcel.Description,
		&response.Parcel.Priority,
		&response.Parcel.PickupAddress,
		&response.Parcel.DeliveryAddress,
		&status,
		&parcelCreatedAt,
	)
	if err != nil {
		return GetDeliveryResponse{}, err
	}
	if err = rows.Close(); err != nil {
		return GetDeliveryResponse{}, err
	}

	if response.Delivery, err = row.toResponse(); err != nil {
		return GetDeliveryResponse{}, err
	}
	if response.Parcel.ID, err = scanUUID(parcelID); err != nil {
		return GetDeliveryResponse{}, err
	}
	if response.Parcel.SenderID, err = scanUUID(senderID); err != nil {
		return GetDeliveryResponse{}, err
	}
	if response.Parcel.ReceiverID, err = scanUUID(receiverID); err != nil {
		return GetDeliveryResponse{}, err
	}
	if response.Parcel.Status, err = parcel.StatusFromString(status); err != nil {
		return GetDeliveryResponse{}, err
	}
	response.Parcel.CreatedAt = parcelCreatedAt

	if err = h.ensureVisible(query.Actor(), response); err != nil {
		return GetDeliveryResponse{}, err
	}

	if response.Delivery.Pings, err = fetchPings(ctx, h.db, row.id, DeliveryPingWindow); err != nil {
		return GetDeliveryResponse{}, err
	}

	return response, nil
}

func (h GetDeliveryQueryHandler) ensureVisible(actor identity.Identity, response GetDeliveryResponse) error {
	switch actor.Role {
	case identity.RoleAdmin:
		return nil
	case identity.RoleDriver:
		if response.Delivery.DriverID != nil && response.Delivery.DriverID.IsEqual(actor.SubjectID) {
			return nil
		}
		return errs.NewAccessForbiddenError("delivery is only visible to its assigned driver")
	default:
		return ensureParcelVisible(actor, response.Parcel.SenderID, response.Parcel.ReceiverID)
	}
}
