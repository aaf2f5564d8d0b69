package adt

// Mappable is anything that can transform its active payload.
type Mappable interface {
	// Fmap applies fn to the active payload, or propagates the inactive state
	Fmap(fn func(any) any) Mappable
}

// Appliable is a Mappable whose active payload may be a unary function.
type Appliable interface {
	Mappable
	// Ap applies the receiver's function payload to the payload of arg.
	// It panics with *TypeConstraintError when the payload is not a unary
	// function or arg is a different container kind.
	Ap(arg Appliable) Appliable
}

// Chainable is an Appliable that can flatten one level of nesting.
type Chainable interface {
	Appliable
	// Bind passes the active payload to fn and returns its result unchanged.
	// fn is not invoked for inactive states.
	Bind(fn func(any) Chainable) Chainable
}

// Pure wraps a plain value into the active state of some container kind.
type Pure func(x any) Appliable

// AsAppliable narrows the result of Fmap back to Appliable.
func AsAppliable(m Mappable) Appliable {
	a, ok := m.(Appliable)
	if !ok {
		panic(newTypeConstraintError("fmap", m, "expected an appliable container"))
	}
	return a
}
