// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. The unique index on parcel_id enforces the
// one-delivery-per-parcel invariant at the storage level.
package deliveryrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates, including the denormalized current position.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParcelID         uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	AssignedAt       *time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CurrentLatitude  *float64
	CurrentLongitude *float64
	Notes            *string
	ProofOfDelivery  *string
	Signature        *string
	CreatedAt        time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var currentLatitude, currentLongitude *float64
	if position := aggregate.CurrentPosition(); position != nil {
		lat := position.Latitude()
		lon := position.Longitude()
		currentLatitude = &lat
		currentLongitude = &lon
	}

	completion := aggregate.Completion()

	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		ParcelID:         aggregate.ParcelID().Bytes(),
		DriverID:         driverID,
		AssignedAt:       aggregate.AssignedAt(),
		StartedAt:        aggregate.StartedAt(),
		CompletedAt:      aggregate.CompletedAt(),
		CurrentLatitude:  currentLatitude,
		CurrentLongitude: currentLongitude,
		Notes:            completion.Notes,
		ProofOfDelivery:  completion.ProofOfDelivery,
		Signature:        completion.Signature,
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using
// RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	var currentPosition *kernel.Coordinates
	if dto.CurrentLatitude != nil && dto.CurrentLongitude != nil {
		position, posErr := kernel.NewCoordinates(*dto.CurrentLatitude, *dto.CurrentLongitude)
		if posErr != nil {
			return nil, posErr
		}

		currentPosition = &position
	}

	return delivery.RestoreDelivery(
		id,
		parcelID,
		driverID,
		dto.AssignedAt,
		dto.StartedAt,
		dto.CompletedAt,
		currentPosition,
		delivery.Completion{
			Notes:           dto.Notes,
			ProofOfDelivery: dto.ProofOfDelivery,
			Signature:       dto.Signature,
		},
		dto.CreatedAt,
	)
}
