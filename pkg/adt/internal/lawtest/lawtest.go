// Package lawtest checks the functor, applicative and monad laws for a
// container instantiated at int.
package lawtest

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

const propertyN = 200

// Subject describes a container C over int and its function-holding form CF.
type Subject[C, CF any] struct {
	Pure  func(int) C
	PureF func(func(int) int) CF
	Map   func(C, func(int) int) C
	Apply func(CF, C) C
	Chain func(C, func(int) C) C
	// Inactive, if set, lets the monad law functions return an inactive state.
	Inactive func() C
}

// Check runs every law against each sample constructor.
func Check[C, CF any](t *testing.T, s Subject[C, CF], samples map[string]func(int) C) {
	t.Helper()

	for name, sample := range samples {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewPCG(42, 0))
			for range propertyN {
				checkOnce(t, s, sample, rng.IntN(2001)-1000)
			}
		})
	}
}

func checkOnce[C, CF any](t *testing.T, s Subject[C, CF], sample func(int) C, x int) {
	id := func(v int) int { return v }
	inc := func(v int) int { return v + 1 }
	dbl := func(v int) int { return v * 2 }

	f := func(v int) C {
		if s.Inactive != nil && v%3 == 0 {
			return s.Inactive()
		}
		return s.Pure(v + 1)
	}
	g := func(v int) C { return s.Pure(v - 2) }

	c := sample(x)

	// functor identity
	assert.Equal(t, c, s.Map(c, id), "functor identity, x=%d", x)
	// functor composition
	assert.Equal(t, s.Map(s.Map(c, inc), dbl), s.Map(c, func(v int) int { return dbl(inc(v)) }),
		"functor composition, x=%d", x)

	// applicative identity
	assert.Equal(t, c, s.Apply(s.PureF(id), c), "applicative identity, x=%d", x)
	// applicative homomorphism
	assert.Equal(t, s.Pure(dbl(x)), s.Apply(s.PureF(dbl), s.Pure(x)), "applicative homomorphism, x=%d", x)

	// monad left identity
	assert.Equal(t, f(x), s.Chain(s.Pure(x), f), "monad left identity, x=%d", x)
	// monad right identity
	assert.Equal(t, c, s.Chain(c, s.Pure), "monad right identity, x=%d", x)
	// monad associativity
	assert.Equal(t, s.Chain(s.Chain(c, f), g),
		s.Chain(c, func(v int) C { return s.Chain(f(v), g) }),
		"monad associativity, x=%d", x)
}
