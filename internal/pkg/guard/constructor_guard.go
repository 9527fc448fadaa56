// Package guard provides a defensive pattern that ensures value objects and
// entities are only created through their designated constructor functions.
//
// Embedding a ConstructorGuard in a struct makes the zero value detectable:
// a struct created by direct initialization fails validation, while one
// created through its constructor passes. This keeps domain objects in a
// valid state without exposing their fields.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object was created through a
// constructor. The zero value is "not constructed" and fails validation.
//
// Example:
//
//	type Product struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewProduct(name string) (Product, error) {
//	    if name == "" {
//	        return Product{}, errors.New("name is required")
//	    }
//	    return Product{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Product) Validate() error {
//	    return p.guard.Validate(ErrProductIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
