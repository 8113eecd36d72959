package both

import (
	"errors"

	"github.com/ib-77/anyof/pkg/anyof/either"
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// Both pairs two values; both slots are always present. Equality is
// structural.
type Both[L, R any] struct {
	Left  L
	Right R
}

// New creates a Both from two values.
func New[L, R any](l L, r R) Both[L, R] {
	return Both[L, R]{Left: l, Right: r}
}

// FromCouple creates a Both from the two halves of a couple. It is the same
// operation as New, named for the couple-to-pair conversion direction.
func FromCouple[L, R any](l L, r R) Both[L, R] {
	return New(l, r)
}

// FromOptions builds a Both from a pair of options. Both values must be
// present; a missing side is a shape mismatch.
func FromOptions[L, R any](l option.Option[L], r option.Option[R]) (Both[L, R], error) {
	lv, hasL := l.Get()
	if !hasL {
		return Both[L, R]{}, errors.New("both: expected both values, left is missing")
	}
	rv, hasR := r.Get()
	if !hasR {
		return Both[L, R]{}, errors.New("both: expected both values, right is missing")
	}
	return New(lv, rv), nil
}

// Couple returns the two values as a couple.
func (b Both[L, R]) Couple() (L, R) {
	return b.Left, b.Right
}

// Options returns both slots as options; both are always filled.
func (b Both[L, R]) Options() (option.Option[L], option.Option[R]) {
	return option.Some(b.Left), option.Some(b.Right)
}

// IntoLeft projects the pair into an Either holding the left value. The
// right value is discarded on purpose.
func (b Both[L, R]) IntoLeft() either.Either[L, R] {
	return either.Left[L, R](b.Left)
}

// IntoRight projects the pair into an Either holding the right value. The
// left value is discarded on purpose.
func (b Both[L, R]) IntoRight() either.Either[L, R] {
	return either.Right[L, R](b.Right)
}

// LeftOr returns the left value; the default is never used.
func (b Both[L, R]) LeftOr(_ L) L {
	return b.Left
}

// LeftOrElse returns the left value; f is never invoked.
func (b Both[L, R]) LeftOrElse(_ func() L) L {
	return b.Left
}

// RightOr returns the right value; the default is never used.
func (b Both[L, R]) RightOr(_ R) R {
	return b.Right
}

// RightOrElse returns the right value; f is never invoked.
func (b Both[L, R]) RightOrElse(_ func() R) R {
	return b.Right
}

// Swap exchanges the two slots.
func (b Both[L, R]) Swap() Both[R, L] {
	return Both[R, L]{Left: b.Right, Right: b.Left}
}

// Map applies both functions, each exactly once.
func Map[L, R, L2, R2 any](b Both[L, R], fl func(L) L2, fr func(R) R2) Both[L2, R2] {
	return New(fl(b.Left), fr(b.Right))
}

// MapLeft transforms the left value.
func MapLeft[L, R, L2 any](b Both[L, R], f func(L) L2) Both[L2, R] {
	return Map(b, f, func(r R) R { return r })
}

// MapRight transforms the right value.
func MapRight[L, R, R2 any](b Both[L, R], f func(R) R2) Both[L, R2] {
	return Map(b, func(l L) L { return l }, f)
}
