package either

// Map transforms a Preferred value; Alternative passes through.
func Map[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.preferred {
		return Preferred[L](fn(e.value))
	}
	return Alternative[L, U](e.alternative)
}

// MapAlternative transforms an Alternative value; Preferred passes through.
func MapAlternative[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if e.preferred {
		return Preferred[U](e.value)
	}
	return Alternative[U, R](fn(e.alternative))
}

// BiMap transforms whichever side is set.
func BiMap[L, R, L2, R2 any](e Either[L, R], onAlternative func(L) L2, onPreferred func(R) R2) Either[L2, R2] {
	if e.preferred {
		return Preferred[L2](onPreferred(e.value))
	}
	return Alternative[L2, R2](onAlternative(e.alternative))
}

// Apply calls the function held by ef with the value held by e. The first
// Alternative, ef before e, becomes the result.
func Apply[L, T, U any](ef Either[L, func(T) U], e Either[L, T]) Either[L, U] {
	switch {
	case ef.preferred && e.preferred:
		return Preferred[L](ef.value(e.value))
	case !ef.preferred:
		return Alternative[L, U](ef.alternative)
	default:
		return Alternative[L, U](e.alternative)
	}
}

// Chain passes a Preferred value to fn and returns its result.
func Chain[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.preferred {
		return fn(e.value)
	}
	return Alternative[L, U](e.alternative)
}

// CaseOf collapses e by calling exactly one of the handlers.
func CaseOf[L, R, U any](e Either[L, R], onAlternative func(L) U, onPreferred func(R) U) U {
	if e.preferred {
		return onPreferred(e.value)
	}
	return onAlternative(e.alternative)
}

// Tee runs onPreferred for its side effect and returns e unchanged.
func Tee[L, R any](e Either[L, R], onPreferred func(R)) Either[L, R] {
	if e.preferred {
		onPreferred(e.value)
	}
	return e
}
