// Package guard detects zero-value structs that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in entities, commands and queries so that a
// zero value can be told apart from a constructed one.
//
// Example usage:
//
//	type Order struct {
//	    id    int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrder(id int64) *Order {
//	    return &Order{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (o *Order) Validate() error {
//	    return o.guard.Validate(ErrOrderIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
