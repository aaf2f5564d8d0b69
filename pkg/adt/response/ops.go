package response

// Map transforms a Resolved value; Pending and Failed pass through.
func Map[E, T, U any](r Response[E, T], fn func(T) U) Response[E, U] {
	switch r.state {
	case stateResolved:
		return Resolved[E](fn(r.value))
	case stateFailed:
		return Failed[E, U](r.err)
	default:
		return Pending[E, U]()
	}
}

// MapError transforms a Failed error; Pending and Resolved pass through.
func MapError[E, T, E2 any](r Response[E, T], fn func(E) E2) Response[E2, T] {
	switch r.state {
	case stateResolved:
		return Resolved[E2](r.value)
	case stateFailed:
		return Failed[E2, T](fn(r.err))
	default:
		return Pending[E2, T]()
	}
}

// BiMap transforms the value of a Resolved or the error of a Failed.
func BiMap[E, T, E2, U any](r Response[E, T], onError func(E) E2, onResolved func(T) U) Response[E2, U] {
	switch r.state {
	case stateResolved:
		return Resolved[E2](onResolved(r.value))
	case stateFailed:
		return Failed[E2, U](onError(r.err))
	default:
		return Pending[E2, U]()
	}
}

// Apply calls the function held by rf with the value held by r. When they
// are not both Resolved, Failed (rf checked first) wins over Pending.
func Apply[E, T, U any](rf Response[E, func(T) U], r Response[E, T]) Response[E, U] {
	switch {
	case rf.state == stateResolved && r.state == stateResolved:
		return Resolved[E](rf.value(r.value))
	case rf.state == stateFailed:
		return Failed[E, U](rf.err)
	case r.state == stateFailed:
		return Failed[E, U](r.err)
	default:
		return Pending[E, U]()
	}
}

// Chain passes a Resolved value to fn and returns its result.
func Chain[E, T, U any](r Response[E, T], fn func(T) Response[E, U]) Response[E, U] {
	switch r.state {
	case stateResolved:
		return fn(r.value)
	case stateFailed:
		return Failed[E, U](r.err)
	default:
		return Pending[E, U]()
	}
}

// CaseOf collapses r by calling exactly one of the handlers.
func CaseOf[E, T, U any](r Response[E, T], onPending func() U, onResolved func(T) U, onFailed func(E) U) U {
	switch r.state {
	case stateResolved:
		return onResolved(r.value)
	case stateFailed:
		return onFailed(r.err)
	default:
		return onPending()
	}
}

// Tee runs onResolved for its side effect and returns r unchanged.
func Tee[E, T any](r Response[E, T], onResolved func(T)) Response[E, T] {
	if r.state == stateResolved {
		onResolved(r.value)
	}
	return r
}
