package adt

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeConstraint is the sentinel every *TypeConstraintError unwraps to.
var ErrTypeConstraint = errors.New("type constraint failure")

// TypeConstraintError reports programmer misuse of a container: applying a
// payload that is not a unary function, extracting from an inactive state, or
// mixing container kinds.
type TypeConstraintError struct {
	Op     string
	Value  any
	Kind   string
	Reason string
}

func (e *TypeConstraintError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%v: %s: %s (value %v, kind %s)", ErrTypeConstraint, e.Op, e.Reason, e.Value, e.Kind)
	}
	return fmt.Sprintf("%v: %s: value %v, kind %s", ErrTypeConstraint, e.Op, e.Value, e.Kind)
}

func (e *TypeConstraintError) Unwrap() error {
	return ErrTypeConstraint
}

// NewTypeConstraintError builds the error for op, recording the runtime kind of value.
func NewTypeConstraintError(op string, value any, reason string) *TypeConstraintError {
	return newTypeConstraintError(op, value, reason)
}

func newTypeConstraintError(op string, value any, reason string) *TypeConstraintError {
	return &TypeConstraintError{
		Op:     op,
		Value:  value,
		Kind:   KindOf(value),
		Reason: reason,
	}
}

// KindOf returns the reflect kind name of v, or "nil".
func KindOf(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).Kind().String()
}
