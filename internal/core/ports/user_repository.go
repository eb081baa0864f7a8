package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
)

// UserRepository defines the read contract for user records. Users are
// provisioned out of band; the service only needs to look them up, mainly
// to verify that an assignment target actually holds the DRIVER role.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	// Returns an ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (identity.User, error)
}
