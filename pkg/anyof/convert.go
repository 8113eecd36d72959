package anyof

import (
	"github.com/ib-77/anyof/pkg/anyof/both"
	"github.com/ib-77/anyof/pkg/anyof/either"
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// FromEither lifts a disjoint choice into the matching exclusive state.
func FromEither[L, R any](e either.Either[L, R]) AnyOf[L, R] {
	l, r := e.Options()
	return New(l, r)
}

// FromBoth lifts a pair into the Both state.
func FromBoth[L, R any](b both.Both[L, R]) AnyOf[L, R] {
	return NewBoth(b.Left, b.Right)
}

// FromCouple lifts a couple into the Both state.
func FromCouple[L, R any](l L, r R) AnyOf[L, R] {
	return NewBoth(l, r)
}

// IntoEither converts back to a disjoint choice. It fails unless exactly one
// side is present.
func (a AnyOf[L, R]) IntoEither() (either.Either[L, R], error) {
	if !a.IsOne() {
		return either.Either[L, R]{}, shapeErr("Left or Right", a.Shape())
	}
	if l, ok := a.left.Get(); ok {
		return either.Left[L, R](l), nil
	}
	return either.Right[L, R](a.right.Unwrap()), nil
}

// MustEither converts back to a disjoint choice, panicking unless exactly
// one side is present.
func (a AnyOf[L, R]) MustEither() either.Either[L, R] {
	e, err := a.IntoEither()
	if err != nil {
		panic(err)
	}
	return e
}

// IntoBoth converts back to a pair. It fails unless both sides are present.
func (a AnyOf[L, R]) IntoBoth() (both.Both[L, R], error) {
	b, ok := a.BothOrNone()
	if !ok {
		return both.Both[L, R]{}, shapeErr("Both", a.Shape())
	}
	return b, nil
}

// EitherPair splits the value into per-side Either views: a filled left slot
// yields a Left-tagged option, a filled right slot a Right-tagged one.
func (a AnyOf[L, R]) EitherPair() (option.Option[either.Either[L, R]], option.Option[either.Either[L, R]]) {
	l := option.Map(a.left, either.Left[L, R])
	r := option.Map(a.right, either.Right[L, R])
	return l, r
}
