// Package guard detects aggregates and value objects that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when no error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into domain types. Only NewConstructorGuard produces a guard
// that validates, so a zero-value struct (for example `order.Order{}`) is always rejected.
//
//	type Neighborhood struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (n Neighborhood) Validate() error {
//	    return n.guard.Validate(ErrNeighborhoodNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
