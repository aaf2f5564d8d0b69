package adt

// LiftA2 applies fn to the payloads of fa and fb. The result is active only
// when both arguments are; otherwise the inactive state chosen by Ap wins.
func LiftA2(fn func(a, b any) any, fa, fb Appliable) Appliable {
	return AsAppliable(fa.Fmap(func(a any) any {
		return func(b any) any { return fn(a, b) }
	})).Ap(fb)
}

func LiftA3(fn func(a, b, c any) any, fa, fb, fc Appliable) Appliable {
	return AsAppliable(fa.Fmap(func(a any) any {
		return func(b any) any {
			return func(c any) any { return fn(a, b, c) }
		}
	})).Ap(fb).Ap(fc)
}

func LiftA4(fn func(a, b, c, d any) any, fa, fb, fc, fd Appliable) Appliable {
	return AsAppliable(fa.Fmap(func(a any) any {
		return func(b any) any {
			return func(c any) any {
				return func(d any) any { return fn(a, b, c, d) }
			}
		}
	})).Ap(fb).Ap(fc).Ap(fd)
}

func LiftA5(fn func(a, b, c, d, e any) any, fa, fb, fc, fd, fe Appliable) Appliable {
	return AsAppliable(fa.Fmap(func(a any) any {
		return func(b any) any {
			return func(c any) any {
				return func(d any) any {
					return func(e any) any { return fn(a, b, c, d, e) }
				}
			}
		}
	})).Ap(fb).Ap(fc).Ap(fd).Ap(fe)
}

func LiftA6(fn func(a, b, c, d, e, f any) any, fa, fb, fc, fd, fe, ff Appliable) Appliable {
	return AsAppliable(fa.Fmap(func(a any) any {
		return func(b any) any {
			return func(c any) any {
				return func(d any) any {
					return func(e any) any {
						return func(f any) any { return fn(a, b, c, d, e, f) }
					}
				}
			}
		}
	})).Ap(fb).Ap(fc).Ap(fd).Ap(fe).Ap(ff)
}

// Traverse maps fn over xs and collects the payloads in input order.
// The accumulator is always the receiver of Ap, so the leftmost inactive
// state decides the result. fn is applied to every element.
func Traverse(pure Pure, fn func(x any) Appliable, xs []any) Appliable {
	acc := pure([]any{})
	for _, x := range xs {
		acc = LiftA2(snoc, acc, fn(x))
	}
	return acc
}

// SequenceA is Traverse with the identity function.
func SequenceA(pure Pure, xs []Appliable) Appliable {
	items := make([]any, len(xs))
	for i, x := range xs {
		items[i] = x
	}
	return Traverse(pure, func(x any) Appliable {
		c, ok := x.(Appliable)
		if !ok {
			panic(newTypeConstraintError("sequence", x, "expected a container"))
		}
		return c
	}, items)
}

// TakeLeft keeps the payload of a, provided both a and b are active.
func TakeLeft(a, b Appliable) Appliable {
	return LiftA2(Constant, a, b)
}

// TakeRight keeps the payload of b, provided both a and b are active.
func TakeRight(a, b Appliable) Appliable {
	return LiftA2(func(x, y any) any { return Constant(y, x) }, a, b)
}

// snoc copies the accumulator on every step, so Traverse is quadratic in
// the number of items; containers never share a backing array.
func snoc(xs, x any) any {
	prev := xs.([]any)
	out := make([]any, len(prev), len(prev)+1)
	copy(out, prev)
	return append(out, x)
}
