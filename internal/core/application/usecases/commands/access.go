package commands

import (
	"parceltrack/internal/core/domain/model/identity"
)

// Role requirements per operation. Ownership checks (sender of a parcel,
// assigned driver of a delivery) live on the aggregates themselves; these
// sets only gate by role. Creating a parcel is open to every authenticated
// identity and therefore has no set here.
var (
	updateParcelStatusRoles = identity.NewRoleSet(identity.RoleAdmin, identity.RoleDriver)
	createDeliveryRoles     = identity.NewRoleSet(identity.RoleAdmin)
	assignDriverRoles       = identity.NewRoleSet(identity.RoleAdmin)
	driverRoles             = identity.NewRoleSet(identity.RoleDriver)
)
