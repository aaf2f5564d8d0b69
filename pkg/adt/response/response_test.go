package response

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/internal/lawtest"
)

var errBoom = errors.New("boom")

func TestLaws(t *testing.T) {
	t.Parallel()
	s := lawtest.Subject[Response[error, int], Response[error, func(int) int]]{
		Pure:     Pure[error, int],
		PureF:    Pure[error, func(int) int],
		Map:      Map[error, int, int],
		Apply:    Apply[error, int, int],
		Chain:    Chain[error, int, int],
		Inactive: Pending[error, int],
	}

	lawtest.Check(t, s, map[string]func(int) Response[error, int]{
		"resolved": Resolved[error, int],
		"failed":   func(int) Response[error, int] { return Failed[error, int](errBoom) },
		"pending":  func(int) Response[error, int] { return Pending[error, int]() },
	})
}

func TestErasedLaws(t *testing.T) {
	t.Parallel()
	id := func(x any) any { return x }
	pure := func(x any) adt.Chainable { return Resolved[error](x) }

	for _, c := range []Response[error, int]{Resolved[error](42), Failed[error, int](errBoom), Pending[error, int]()} {
		assert.Equal(t, c.erase(), c.Fmap(id), "functor identity")
		assert.Equal(t, c.erase(), Pure[error](id).Ap(c), "applicative identity")
		assert.Equal(t, c.erase(), c.Bind(pure), "right identity")
	}

	inc := func(x any) any { return x.(int) + 1 }
	assert.Equal(t, Resolved[any, any](43), Pure[error](inc).Ap(Resolved[error](42)), "homomorphism")
	assert.Equal(t, Resolved[any, any](43),
		Resolved[error](42).Bind(func(x any) adt.Chainable { return Resolved[error](x.(int) + 1) }),
		"left identity")
}

func TestMapAndMapError(t *testing.T) {
	t.Parallel()
	called := false
	toStr := func(n int) string { called = true; return strconv.Itoa(n) }
	wrap := func(err error) string { return "wrapped: " + err.Error() }

	assert.Equal(t, Resolved[error]("4"), Map(Resolved[error](4), toStr))
	called = false
	assert.Equal(t, Failed[error, string](errBoom), Map(Failed[error, int](errBoom), toStr))
	assert.Equal(t, Pending[error, string](), Map(Pending[error, int](), toStr))
	assert.False(t, called)

	assert.Equal(t, Failed[string, int]("wrapped: boom"), MapError(Failed[error, int](errBoom), wrap))
	assert.Equal(t, Resolved[string](4), MapError(Resolved[error](4), wrap))
	assert.Equal(t, Pending[string, int](), MapError(Pending[error, int](), wrap))

	assert.Equal(t, Failed[string, string]("wrapped: boom"), BiMap(Failed[error, int](errBoom), wrap, toStr))
	assert.Equal(t, Resolved[string]("1"), BiMap(Resolved[error](1), wrap, toStr))
	assert.Equal(t, Pending[string, string](), BiMap(Pending[error, int](), wrap, toStr))
}

func TestApplyPrecedence(t *testing.T) {
	t.Parallel()
	inc := func(x int) int { return x + 1 }
	other := errors.New("other")

	tests := []struct {
		name string
		fn   Response[error, func(int) int]
		arg  Response[error, int]
		want Response[error, int]
	}{
		{"both resolved", Resolved[error](inc), Resolved[error](4), Resolved[error](5)},
		{"receiver failed", Failed[error, func(int) int](errBoom), Failed[error, int](other), Failed[error, int](errBoom)},
		{"argument failed", Resolved[error](inc), Failed[error, int](other), Failed[error, int](other)},
		{"pending receiver, failed argument", Pending[error, func(int) int](), Failed[error, int](other), Failed[error, int](other)},
		{"failed receiver, pending argument", Failed[error, func(int) int](errBoom), Pending[error, int](), Failed[error, int](errBoom)},
		{"pending", Resolved[error](inc), Pending[error, int](), Pending[error, int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.fn, tt.arg))
			assert.Equal(t, tt.want.erase(), tt.fn.Ap(tt.arg))
		})
	}
}

func TestAp_NonFunction(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t,
		"type constraint failure: apply: expected a unary function (value 4, kind int)",
		func() { Resolved[error](4).Ap(Resolved[error](1)) })
	assert.Equal(t, Pending[any, any](), Resolved[error](4).Ap(Pending[error, int]()))
}

func TestBind_WrongContainer(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Resolved[error](1).Bind(func(x any) adt.Chainable { return nil })
	})
}

func TestCaseOf(t *testing.T) {
	t.Parallel()
	render := func(r Response[error, int]) string {
		return CaseOf(r,
			func() string { return "loading" },
			func(v int) string { return strconv.Itoa(v) },
			func(err error) string { return err.Error() })
	}

	assert.Equal(t, "loading", render(Pending[error, int]()))
	assert.Equal(t, "3", render(Resolved[error](3)))
	assert.Equal(t, "boom", render(Failed[error, int](errBoom)))
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	v, ok := Resolved[error](3).GetValue()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = Pending[error, int]().GetValue()
	assert.False(t, ok)

	err, ok := Failed[error, int](errBoom).GetError()
	assert.True(t, ok)
	assert.Equal(t, errBoom, err)

	_, ok = Resolved[error](3).GetError()
	assert.False(t, ok)

	assert.Equal(t, 3, Resolved[error](3).WithDefault(0))
	assert.Equal(t, 0, Failed[error, int](errBoom).WithDefault(0))
	assert.True(t, Pending[error, int]().IsPending())
	assert.True(t, Resolved[error](1).IsResolved())
	assert.True(t, Failed[error, int](errBoom).IsFailed())
}

func TestFromResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Resolved[error](12), FromResult(strconv.Atoi("12")))
	assert.True(t, FromResult(strconv.Atoi("x")).IsFailed())
}

func TestLiftAndTraverse(t *testing.T) {
	t.Parallel()
	subtract := Lift2[error](func(a, b int) int { return a - b })
	r := Resolved[error, int]

	assert.Equal(t, r(1), subtract(r(4), r(3)))
	assert.Equal(t, Failed[error, int](errBoom), subtract(Pending[error, int](), Failed[error, int](errBoom)))
	assert.Equal(t, Pending[error, int](), subtract(r(4), Pending[error, int]()))

	add3 := Lift3[error](func(a, b, c int) int { return a + b + c })
	assert.Equal(t, r(6), add3(r(1), r(2), r(3)))

	add5 := Lift5[error](func(a, b, c, d, e int) int { return a + b + c + d + e })
	assert.Equal(t, r(15), add5(r(1), r(2), r(3), r(4), r(5)))

	fetch := func(id int) Response[error, string] {
		switch id {
		case 0:
			return Pending[error, string]()
		case -1:
			return Failed[error, string](errBoom)
		}
		return Resolved[error]("user" + strconv.Itoa(id))
	}

	assert.Equal(t, Resolved[error]([]string{"user1", "user2"}), Traverse(fetch, []int{1, 2}))
	assert.Equal(t, Pending[error, []string](), Traverse(fetch, []int{1, 0, 2}))
	assert.Equal(t, Failed[error, []string](errBoom), Traverse(fetch, []int{0, -1}))

	assert.Equal(t, Resolved[error]([]int{1, 2}), Sequence([]Response[error, int]{r(1), r(2)}))
	assert.Equal(t, r(1), TakeLeft(r(1), Resolved[error]("x")))
	assert.Equal(t, Resolved[error]("x"), TakeRight(r(1), Resolved[error]("x")))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pending", Pending[error, int]().String())
	assert.Equal(t, "Resolved (4)", Resolved[error](4).String())
	assert.Equal(t, "Failed (boom)", Failed[error, int](errBoom).String())
}
