package identity

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Role represents the authorization role carried by a verified identity.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is the default role: may create parcels and see parcels
	// it sends or receives.
	RoleCustomer

	// RoleDriver executes deliveries: start, complete, location updates on
	// deliveries assigned to it, plus parcel status corrections.
	RoleDriver

	// RoleAdmin administers the system: creates deliveries, assigns drivers,
	// and sees everything.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleDriver:   "DRIVER",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses the wire representation of a role ("CUSTOMER",
// "DRIVER", "ADMIN"). Returns a ValueIsInvalidError for anything else.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire name of the role, implementing fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the role is one of the three known roles.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleDriver && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// RoleSet is an immutable set of roles permitted to perform an operation.
// Operations declare their required-role predicate as a RoleSet value,
// keeping the authorization table separately testable from the state
// transitions it guards.
type RoleSet struct {
	roles map[Role]struct{}
}

// NewRoleSet builds a set from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(map[Role]struct{}, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return RoleSet{roles: set}
}

// Contains reports whether the role belongs to the set.
func (s RoleSet) Contains(role Role) bool {
	_, ok := s.roles[role]
	return ok
}

// Authorize returns nil when the identity's role belongs to the set and an
// AccessForbiddenError naming the operation otherwise. It is evaluated once
// per operation, before any state mutation.
func (s RoleSet) Authorize(actor Identity, operation string) error {
	if !s.Contains(actor.Role) {
		return errs.NewAccessForbiddenErrorWithCause(operation,
			fmt.Errorf("role %s is not permitted", actor.Role))
	}
	return nil
}
