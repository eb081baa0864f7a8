package queries

import (
	"parceltrack/internal/core/domain/model/identity"
)

// Role requirements for the delivery views. Parcel views rely on the
// per-parcel visibility rule instead of a role gate.
var listDeliveriesRoles = identity.NewRoleSet(identity.RoleAdmin, identity.RoleDriver)
