package either

import (
	"errors"

	"github.com/ib-77/adt/pkg/adt"
)

// FromNullable returns Alternative(alternative) if value is nil, else
// Preferred(value).
func FromNullable[L, R any](alternative L, value R) Either[L, R] {
	if adt.IsNil(value) {
		return Alternative[L, R](alternative)
	}
	return Preferred[L](value)
}

// FromResult adapts a (value, error) pair.
func FromResult[T any](value T, err error) Either[error, T] {
	if err != nil {
		return Alternative[error, T](err)
	}
	return Preferred[error](value)
}

// Try runs fn and wraps its outcome.
func Try[T any](fn func() (T, error)) Either[error, T] {
	return FromResult(fn())
}

// Validate returns Preferred(value) if validate accepts it, else an
// Alternative carrying errMsg.
func Validate[T any](value T, validate func(in T) (isValid bool, errMsg string)) Either[error, T] {
	if isValid, errMsg := validate(value); !isValid {
		return Alternative[error, T](errors.New(errMsg))
	}
	return Preferred[error](value)
}

// ValidateAll runs validators in order. With breakOnError it stops at the
// first rejection; otherwise every rejection is joined into one error.
func ValidateAll[T any](value T, breakOnError bool,
	validators ...func(in T) (isValid bool, errMsg string)) Either[error, T] {

	var err error
	for _, validate := range validators {
		res := Validate(value, validate)
		if res.preferred {
			continue
		}
		if breakOnError {
			return res
		}
		errs := adt.GetErrors(err)
		errs = append(errs, res.alternative)
		err = errors.Join(errs...)
	}

	if err != nil {
		return Alternative[error, T](err)
	}
	return Preferred[error](value)
}
