package identity

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
)

// Identity is the verified {subjectId, role} pair every core entry point
// receives from the identity collaborator. The core trusts it verbatim and
// never inspects credentials itself.
type Identity struct {
	SubjectID kernel.UUID
	Role      Role
}

// NewIdentity creates a validated Identity.
func NewIdentity(subjectID kernel.UUID, role Role) (Identity, error) {
	if err := errors.Join(subjectID.Validate(), role.Validate()); err != nil {
		return Identity{}, err
	}
	return Identity{SubjectID: subjectID, Role: role}, nil
}

// Validate checks both components of the identity.
func (i Identity) Validate() error {
	return errors.Join(i.SubjectID.Validate(), i.Role.Validate())
}

// User is the account record backing an identity. Only the fields the core
// needs are modeled: assignment validation reads the role, responses render
// the name and phone. Credential material stays with the identity
// collaborator.
type User struct {
	ID        kernel.UUID
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      Role
}

// IsDriver reports whether the user can be assigned to deliveries.
func (u User) IsDriver() bool {
	return u.Role == RoleDriver
}
