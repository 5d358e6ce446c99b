// Package guard provides a defensive-programming helper that enforces
// constructor usage for value objects and entities.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor function or left as a zero value. Domain objects embed a guard
// and set it inside their New* constructor; Validate then rejects any instance
// that bypassed construction.
//
// Example usage:
//
//	var ErrAddressNotConstructed = errors.New("Address must be created via NewAddress")
//
//	type Address struct {
//	    street string
//	    city   string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewAddress(street, city string) (Address, error) {
//	    if street == "" || city == "" {
//	        return Address{}, errors.New("street and city are required")
//	    }
//	    return Address{street: street, city: city, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (a Address) Validate() error {
//	    return a.guard.Validate(ErrAddressNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor. For zero-value guards it returns notConstructedErr, falling
// back to ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
