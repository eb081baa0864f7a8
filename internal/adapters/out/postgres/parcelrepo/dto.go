// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. Implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking number carries a unique index; it backs the
// public lookup and catches generation races.
type ParcelDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber      string    `gorm:"type:varchar(12);uniqueIndex"`
	SenderID            uuid.UUID `gorm:"type:uuid;index"`
	ReceiverID          uuid.UUID `gorm:"type:uuid;index"`
	Description         string
	WeightKG            float64
	Dimensions          string
	DeclaredValue       float64
	Priority            string `gorm:"type:varchar(16)"`
	PickupAddress       string
	DeliveryAddress     string
	SpecialInstructions string
	EstimatedDelivery   *time.Time
	Status              string `gorm:"type:varchar(24);index"`
	PickupDate          *time.Time
	DeliveryDate        *time.Time
	CreatedAt           time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	details := aggregate.Details()

	return ParcelDTO{
		ID:                  aggregate.ID().Bytes(),
		TrackingNumber:      aggregate.TrackingNumber().String(),
		SenderID:            aggregate.SenderID().Bytes(),
		ReceiverID:          aggregate.ReceiverID().Bytes(),
		Description:         details.Description,
		WeightKG:            details.WeightKG,
		Dimensions:          details.Dimensions,
		DeclaredValue:       details.DeclaredValue,
		Priority:            details.Priority.String(),
		PickupAddress:       details.PickupAddress,
		DeliveryAddress:     details.DeliveryAddress,
		SpecialInstructions: details.SpecialInstructions,
		EstimatedDelivery:   details.EstimatedDelivery,
		Status:              aggregate.Status().String(),
		PickupDate:          aggregate.PickupDate(),
		DeliveryDate:        aggregate.DeliveryDate(),
		CreatedAt:           aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}
	trackingNumber, err := parcel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}
	priority, err := parcel.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	details := parcel.Details{
		Description:         dto.Description,
		WeightKG:            dto.WeightKG,
		Dimensions:          dto.Dimensions,
		DeclaredValue:       dto.DeclaredValue,
		Priority:            priority,
		PickupAddress:       dto.PickupAddress,
		DeliveryAddress:     dto.DeliveryAddress,
		SpecialInstructions: dto.SpecialInstructions,
		EstimatedDelivery:   dto.EstimatedDelivery,
	}

	return parcel.RestoreParcel(
		id,
		trackingNumber,
		senderID,
		receiverID,
		details,
		status,
		dto.CreatedAt,
		dto.PickupDate,
		dto.DeliveryDate,
	)
}
