// Package guard implements a defensive pattern that ensures value objects
// are only created through their designated constructor functions.
//
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: the guard's flag is only set when the object is built via its
// constructor, so Validate fails for anything created by direct struct
// initialization. Commands and queries use this to reject unconstructed
// requests before touching storage.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is intentionally invalid.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as constructed.
// Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owner was built via its constructor, otherwise
// the supplied validationError (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
