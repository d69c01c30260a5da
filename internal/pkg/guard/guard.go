// Package guard holds ConstructorGuard, the marker embedded by domain types and
// commands that must only be built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes a value built by its constructor from a zero value.
//
//	type PlaceClientOrderCommand struct {
//	    modelID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c PlaceClientOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceClientOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
