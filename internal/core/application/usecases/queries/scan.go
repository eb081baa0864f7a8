package queries

import (
	"context"
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Row-scanning helpers shared by the parcel and delivery read models.

func scanUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func scanOptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}

func derivePhase(driverID *kernel.UUID, startedAt, completedAt *time.Time) string {
	switch {
	case completedAt != nil:
		return delivery.PhaseCompleted.String()
	case startedAt != nil:
		return delivery.PhaseStarted.String()
	case driverID != nil:
		return delivery.PhaseAssigned.String()
	default:
		return delivery.PhaseUnassigned.String()
	}
}

// ensureParcelVisible applies the customer visibility rule: customers only
// see parcels they send or receive. ADMIN and DRIVER see everything.
func ensureParcelVisible(actor identity.Identity, senderID, receiverID kernel.UUID) error {
	if actor.Role != identity.RoleCustomer {
		return nil
	}
	if actor.SubjectID.IsEqual(senderID) || actor.SubjectID.IsEqual(receiverID) {
		return nil
	}

	return errs.NewAccessForbiddenError("parcel is only visible to its sender and receiver")
}

func fetchEvents(ctx context.Context, db *gorm.DB, parcelID uuid.UUID) ([]TrackingEventResponse, error) {
	events := make([]TrackingEventResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			description,
			location,
			latitude,
			longitude,
			occurred_at
		FROM tracking_events
		WHERE parcel_id = ?
		ORDER BY occurred_at DESC, id DESC
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			status     string
			event      TrackingEventResponse
			location   sql.NullString
			latitude   sql.NullFloat64
			longitude  sql.NullFloat64
			occurredAt time.Time
		)

		if err = rows.Scan(&id, &status, &event.Description, &location, &latitude, &longitude, &occurredAt); err != nil {
			return nil, err
		}

		if event.ID, err = scanUUID(id); err != nil {
			return nil, err
		}
		if event.Status, err = parcel.StatusFromString(status); err != nil {
			return nil, err
		}
		event.Location = nullableString(location)
		event.Latitude = nullableFloat(latitude)
		event.Longitude = nullableFloat(longitude)
		event.OccurredAt = occurredAt

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func fetchPings(ctx context.Context, db *gorm.DB, deliveryID uuid.UUID, window int) ([]LocationPingResponse, error) {
	pings := make([]LocationPingResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			latitude,
			longitude,
			accuracy,
			recorded_at
		FROM location_pings
		WHERE delivery_id = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`, deliveryID, window).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			ping     LocationPingResponse
			accuracy sql.NullFloat64
		)

		if err = rows.Scan(&id, &ping.Latitude, &ping.Longitude, &accuracy, &ping.RecordedAt); err != nil {
			return nil, err
		}

		if ping.ID, err = scanUUID(id); err != nil {
			return nil, err
		}
		ping.Accuracy = nullableFloat(accuracy)

		pings = append(pings, ping)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pings, nil
}

type deliveryRow struct {
	id               uuid.UUID
	parcelID         uuid.UUID
	driverID         *uuid.UUID
	assignedAt       sql.NullTime
	startedAt        sql.NullTime
	completedAt      sql.NullTime
	currentLatitude  sql.NullFloat64
	currentLongitude sql.NullFloat64
	notes            sql.NullString
	proofOfDelivery  sql.NullString
	signature        sql.NullString
	createdAt        time.Time
}

func (r deliveryRow) toResponse() (DeliveryResponse, error) {
	id, err := scanUUID(r.id)
	if err != nil {
		return DeliveryResponse{}, err
	}
	parcelID, err := scanUUID(r.parcelID)
	if err != nil {
		return DeliveryResponse{}, err
	}
	driverID, err := scanOptionalUUID(r.driverID)
	if err != nil {
		return DeliveryResponse{}, err
	}

	startedAt := nullableTime(r.startedAt)
	completedAt := nullableTime(r.completedAt)

	return DeliveryResponse{
		ID:               id,
		ParcelID:         parcelID,
		DriverID:         driverID,
		Phase:            derivePhase(driverID, startedAt, completedAt),
		AssignedAt:       nullableTime(r.assignedAt),
		StartedAt:        startedAt,
		CompletedAt:      completedAt,
		CurrentLatitude:  nullableFloat(r.currentLatitude),
		CurrentLongitude: nullableFloat(r.currentLongitude),
		Notes:            nullableString(r.notes),
		ProofOfDelivery:  nullableString(r.proofOfDelivery),
		Signature:        nullableString(r.signature),
		CreatedAt:        r.createdAt,
	}, nil
}

func (r *deliveryRow) scan(rows *sql.Rows) error {
	return rows.Scan(
		&r.id,
		&r.parcelID,
		&r.driverID,
		&r.assignedAt,
		&r.startedAt,
		&r.completedAt,
		&r.currentLatitude,
		&r.currentLongitude,
		&r.notes,
		&r.proofOfDelivery,
		&r.signature,
		&r.createdAt,
	)
}

const deliveryColumns = `
			id,
			parcel_id,
			driver_id,
			assigned_at,
			started_at,
			completed_at,
			current_latitude,
			current_longitude,
			notes,
			proof_of_delivery,
			signature,
			created_at`

type parcelRow struct {
	id                  uuid.UUID
	trackingNumber      string
	senderID            uuid.UUID
	receiverID          uuid.UUID
	description         string
	weightKG            float64
	dimensions          sql.NullString
	declaredValue       float64
	priority            string
	pickupAddress       string
	deliveryAddress     string
	specialInstructions sql.NullString
	estimatedDelivery   sql.NullTime
	status              string
	pickupDate          sql.NullTime
	deliveryDate        sql.NullTime
	createdAt           time.Time
}

const parcelColumns = `
			id,
			tracking_number,
			sender_id,
			receiver_id,
			description,
			weight_kg,
			dimensions,
			declared_value,
			priority,
			pickup_address,
			delivery_address,
			special_instructions,
			estimated_delivery,
			status,
			pickup_date,
			delivery_date,
			created_at`

func (r *parcelRow) scan(rows *sql.Rows) error {
	return rows.Scan(
		&r.id,
		&r.trackingNumber,
		&r.senderID,
		&r.receiverID,
		&r.description,
		&r.weightKG,
		&r.dimensions,
		&r.declaredValue,
		&r.priority,
		&r.pickupAddress,
		&r.deliveryAddress,
		&r.specialInstructions,
		&r.estimatedDelivery,
		&r.status,
		&r.pickupDate,
		&r.deliveryDate,
		&r.createdAt,
	)
}

func (r parcelRow) toResponse() (ParcelResponse, error) {
	id, err := scanUUID(r.id)
	if err != nil {
		return ParcelResponse{}, err
	}
	senderID, err := scanUUID(r.senderID)
	if err != nil {
		return ParcelResponse{}, err
	}
	receiverID, err := scanUUID(r.receiverID)
	if err != nil {
		return ParcelResponse{}, err
	}
	status, err := parcel.StatusFromString(r.status)
	if err != nil {
		return ParcelResponse{}, err
	}

	response := ParcelResponse{
		ID:              id,
		TrackingNumber:  r.trackingNumber,
		SenderID:        senderID,
		ReceiverID:      receiverID,
		Description:     r.description,
		WeightKG:        r.weightKG,
		DeclaredValue:   r.declaredValue,
		Priority:        r.priority,
		PickupAddress:   r.pickupAddress,
		DeliveryAddress: r.deliveryAddress,
		Status:          status,
		PickupDate:      nullableTime(r.pickupDate),
		DeliveryDate:    nullableTime(r.deliveryDate),
		CreatedAt:       r.createdAt,
	}
	if r.dimensions.Valid {
		response.Dimensions = r.dimensions.String
	}
	if r.specialInstructions.Valid {
		response.SpecialInstructions = r.specialInstructions.String
	}
	response.EstimatedDelivery = nullableTime(r.estimatedDelivery)

	return response, nil
}

// fetchParcelView loads one parcel with its event log and, when present,
// the attached delivery with the short ping window. The condition is one of
// "id = ?" or "tracking_number = ?".
func fetchParcelView(
	ctx context.Context,
	db *gorm.DB,
	actor identity.Identity,
	condition string,
	arg any,
) (ParcelResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT`+parcelColumns+`
		FROM parcels
		WHERE `+condition, arg).Rows()
	if err != nil {
		return ParcelResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelResponse{}, err
		}
		return ParcelResponse{}, errs.NewObjectNotFoundError("parcel", arg)
	}

	var row parcelRow
	if err = row.scan(rows); err != nil {
		return ParcelResponse{}, err
	}
	if err = rows.Close(); err != nil {
		return ParcelResponse{}, err
	}

	response, err := row.toResponse()
	if err != nil {
		return ParcelResponse{}, err
	}

	if err = ensureParcelVisible(actor, response.SenderID, response.ReceiverID); err != nil {
		return ParcelResponse{}, err
	}

	if response.Events, err = fetchEvents(ctx, db, row.id); err != nil {
		return ParcelResponse{}, err
	}
	if response.Delivery, err = fetchDeliveryForParcel(ctx, db, row.id, ParcelPingWindow); err != nil {
		return ParcelResponse{}, err
	}

	return response, nil
}

// fetchDeliveryForParcel loads the delivery attached to a parcel together
// with its recent pings. Returns nil without error when the parcel has no
// delivery yet.
func fetchDeliveryForParcel(
	ctx context.Context,
	db *gorm.DB,
	parcelID uuid.UUID,
	pingWindow int,
) (*DeliveryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT`+deliveryColumns+`
		FROM deliveries
		WHERE parcel_id = ?
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var row deliveryRow
	if err = row.scan(rows); err != nil {
		return nil, err
	}
	if err = rows.Close(); err != nil {
		return nil, err
	}

	response, err := row.toResponse()
	if err != nil {
		return nil, err
	}

	if response.Pings, err = fetchPings(ctx, db, row.id, pingWindow); err != nil {
		return nil, err
	}

	return &response, nil
}
