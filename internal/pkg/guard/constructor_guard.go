// Package guard provides a defensive construction pattern for commands,
// queries, and value objects. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so objects that bypassed their constructor
// fail validation instead of carrying unvalidated state through the system.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. Validation always fails with a meaningful
// message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value is invalid, which is the whole point: a struct
// initialized directly (or left as a zero value) fails Validate.
//
// Example:
//
//	type CreateOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(orderID kernel.UUID) (CreateOrderCommand, error) {
//	    return CreateOrderCommand{
//	        orderID: orderID,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns the provided validationError for zero-value guards,
// or ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
