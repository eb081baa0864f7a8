// Package guard provides the constructor-guard pattern used by commands and
// queries to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for a zero-value guarded object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a guard in a struct lets Validate distinguish a
// properly constructed instance from a zero value.
//
// Example:
//
//	type CreateParcelCommand struct {
//	    // fields...
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateParcelCommand(...) (CreateParcelCommand, error) {
//	    return CreateParcelCommand{guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateParcelCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// object it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
