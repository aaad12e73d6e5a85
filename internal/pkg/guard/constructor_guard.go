// Package guard provides a small helper for enforcing constructor usage on
// value objects and commands. Embedding a ConstructorGuard in a struct makes
// the zero value detectable, so code that bypasses the constructor fails
// validation instead of carrying half-initialized state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is
// supplied and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the embedding object went through a
// constructor. The zero value is "not constructed".
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state. Constructors
// assign the result to the guard field of the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the object was properly constructed. Otherwise it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed
// is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed != nil {
		return notConstructed
	}
	return ErrDefaultConstructorGuard
}
