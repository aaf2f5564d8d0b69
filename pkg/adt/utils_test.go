package adt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNil(t *testing.T) {
	t.Parallel()
	var p *int
	var m map[string]int
	var s []int
	var f func()
	var e error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil(e))

	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil(struct{}{}))
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	a := errors.New("a")
	b := errors.New("b")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}

func TestCast(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Cast[int](3))
	assert.Equal(t, 0, Cast[int](nil))
	assert.Nil(t, Cast[error](nil))

	assert.PanicsWithError(t,
		"type constraint failure: cast: expected int (value x, kind string)",
		func() { Cast[int]("x") })
}

func TestInvoke(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Invoke(func(x any) any { return x.(int) + 1 }, 1))
	assert.Equal(t, "1", Invoke(func(x int) string { return "1" }, 1))
	assert.Equal(t, 0, Invoke(func(p *int) int { return 0 }, nil))
}

func TestInvoke_TypeConstraint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   any
		kind string
	}{
		{"number", 4, "int"},
		{"string", "f", "string"},
		{"nil", nil, "nil"},
		{"binary", func(a, b int) int { return a }, "func"},
		{"nil func", (func(any) any)(nil), "func"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			func() {
				defer func() { err, _ = recover().(error) }()
				Invoke(tt.fn, 1)
			}()

			var tce *TypeConstraintError
			require.ErrorAs(t, err, &tce)
			assert.ErrorIs(t, err, ErrTypeConstraint)
			assert.Equal(t, tt.kind, tce.Kind)
			assert.Equal(t, "apply", tce.Op)
		})
	}
}

func TestTypeConstraintError_Nil(t *testing.T) {
	t.Parallel()
	var e *TypeConstraintError

	assert.Equal(t, "<nil>", e.Error())
}

func TestCompose(t *testing.T) {
	t.Parallel()
	f := Compose(func(x int) int { return x + 1 }, func(x int) string { return string(rune('a' + x)) })

	assert.Equal(t, "b", f(0))
	assert.Equal(t, 7, Identity(7))
}
