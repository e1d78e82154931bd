package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is checked and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that a value was built through its constructor
// function rather than by zero-value struct literal. Embed a ConstructorGuard
// in a struct with private fields, set it in the constructor via
// NewConstructorGuard, and call Validate before acting on the value.
//
// The zero value of ConstructorGuard is intentionally invalid.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when nil is given.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
