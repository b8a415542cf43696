// Package guard holds small helpers that protect invariants of application objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when no error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it in
// commands, queries and value objects and call Validate before use; a zero
// value fails validation.
//
//	type CreateBundleCommand struct {
//	    cuttingID int64
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c CreateBundleCommand) IsValid() bool {
//	    return c.guard.Validate(nil) == nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
