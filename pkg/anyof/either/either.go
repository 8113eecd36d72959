package either

import (
	"errors"

	"github.com/ib-77/anyof/pkg/anyof/option"
)

// Either holds exactly one of two values: Left of type L or Right of type R.
// Which side is active is fixed at construction. The zero value is
// Left(zero L).
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates an Either holding a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// FromOptions builds an Either from a pair of options. Exactly one of the
// two must be present; anything else is a shape mismatch.
func FromOptions[L, R any](l option.Option[L], r option.Option[R]) (Either[L, R], error) {
	lv, hasL := l.Get()
	rv, hasR := r.Get()

	switch {
	case hasL && hasR:
		return Either[L, R]{}, errors.New("either: expected exactly one value, found both")
	case hasL:
		return Left[L, R](lv), nil
	case hasR:
		return Right[L, R](rv), nil
	default:
		return Either[L, R]{}, errors.New("either: expected exactly one value, found neither")
	}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value if that side is active.
func (e Either[L, R]) Left() option.Option[L] {
	if e.isRight {
		return option.None[L]()
	}
	return option.Some(e.left)
}

// Right returns the right value if that side is active.
func (e Either[L, R]) Right() option.Option[R] {
	if !e.isRight {
		return option.None[R]()
	}
	return option.Some(e.right)
}

// Options returns both slots as options; exactly one is filled.
func (e Either[L, R]) Options() (option.Option[L], option.Option[R]) {
	return e.Left(), e.Right()
}

// LeftOr returns the left value, or def when the right side is active.
func (e Either[L, R]) LeftOr(def L) L {
	if e.isRight {
		return def
	}
	return e.left
}

// LeftOrElse returns the left value, or computes one when the right side is
// active.
func (e Either[L, R]) LeftOrElse(f func() L) L {
	if e.isRight {
		return f()
	}
	return e.left
}

// LeftOrZero returns the left value, or the zero value of L.
func (e Either[L, R]) LeftOrZero() L {
	return e.left
}

// MustLeft returns the left value. Panics when the right side is active.
func (e Either[L, R]) MustLeft() L {
	return e.ExpectLeft("either: expected Left, found Right")
}

// ExpectLeft returns the left value, panicking with msg when the right side
// is active.
func (e Either[L, R]) ExpectLeft(msg string) L {
	if e.isRight {
		panic(msg)
	}
	return e.left
}

// RightOr returns the right value, or def when the left side is active.
func (e Either[L, R]) RightOr(def R) R {
	if !e.isRight {
		return def
	}
	return e.right
}

// RightOrElse returns the right value, or computes one when the left side is
// active.
func (e Either[L, R]) RightOrElse(f func() R) R {
	if !e.isRight {
		return f()
	}
	return e.right
}

// RightOrZero returns the right value, or the zero value of R.
func (e Either[L, R]) RightOrZero() R {
	return e.right
}

// MustRight returns the right value. Panics when the left side is active.
func (e Either[L, R]) MustRight() R {
	return e.ExpectRight("either: expected Right, found Left")
}

// ExpectRight returns the right value, panicking with msg when the left side
// is active.
func (e Either[L, R]) ExpectRight(msg string) R {
	if !e.isRight {
		panic(msg)
	}
	return e.right
}

// Swap exchanges sides: Left(l) becomes Right(l) and Right(r) becomes
// Left(r).
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Map transforms the active side with the matching function. The function
// for the inactive side is never invoked.
func Map[L, R, L2, R2 any](e Either[L, R], fl func(L) L2, fr func(R) R2) Either[L2, R2] {
	if e.isRight {
		return Right[L2, R2](fr(e.right))
	}
	return Left[L2, R2](fl(e.left))
}

// MapLeft transforms the left value if that side is active.
func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	return Map(e, f, func(r R) R { return r })
}

// MapRight transforms the right value if that side is active.
func MapRight[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	return Map(e, func(l L) L { return l }, f)
}
