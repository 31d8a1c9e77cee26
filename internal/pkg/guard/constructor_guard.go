// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that a zero value can be told apart from one built
// through its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is valid only when created with NewConstructorGuard.
//
//	type Score struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func (s Score) Validate() error {
//	    return s.guard.Validate(ErrScoreIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
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
