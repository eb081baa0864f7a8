// Package userrepo provides read-only access to user records. Accounts are
// provisioned by the identity service; this repository only looks them up.
package userrepo

import (
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure of a user record.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex"`
	FirstName string
	LastName  string
	Phone     string
	Role      string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for user records.
func (UserDTO) TableName() string {
	return "users"
}

// toDomain converts a database DTO to the identity user model.
func toDomain(dto UserDTO) (identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return identity.User{}, err
	}
	role, err := identity.RoleFromString(dto.Role)
	if err != nil {
		return identity.User{}, err
	}

	return identity.User{
		ID:        id,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Phone:     dto.Phone,
		Role:      role,
	}, nil
}
