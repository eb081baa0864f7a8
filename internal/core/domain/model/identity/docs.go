// Package identity models the verified caller identity the core receives
// from the identity collaborator, and the role vocabulary used for
// authorization decisions.
//
// The package includes:
//   - Role: the CUSTOMER/DRIVER/ADMIN role enum
//   - RoleSet: an immutable set of permitted roles, declared as data next to
//     each operation rather than as inline conditionals
//   - Identity: the {subjectId, role} pair attached to every inbound operation
//   - User: the minimal account record needed to validate driver assignment
//
// The core never parses or verifies credentials; the HTTP adapter produces an
// Identity from an already-verified token and the core trusts it verbatim.
package identity
