package maybe

// Map transforms a Present value. Absent is returned untouched and fn is not called.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.present {
		return Present(fn(m.value))
	}
	return Absent[U]()
}

// Apply calls the function held by mf with the value held by m.
// Both must be Present for the result to be Present.
func Apply[T, U any](mf Maybe[func(T) U], m Maybe[T]) Maybe[U] {
	if mf.present && m.present {
		return Present(mf.value(m.value))
	}
	return Absent[U]()
}

// Chain passes a Present value to fn and returns whatever fn returns.
func Chain[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.present {
		return fn(m.value)
	}
	return Absent[U]()
}

// CaseOf collapses m by calling exactly one of the handlers.
func CaseOf[T, U any](m Maybe[T], onPresent func(T) U, onAbsent func() U) U {
	if m.present {
		return onPresent(m.value)
	}
	return onAbsent()
}

// Tee runs onPresent for its side effect and returns m unchanged.
func Tee[T any](m Maybe[T], onPresent func(T)) Maybe[T] {
	if m.present {
		onPresent(m.value)
	}
	return m
}
