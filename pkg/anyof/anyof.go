package anyof

import (
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// AnyOf holds zero, one, or both of a left L and a right R value. The four
// states (Neither, only-left, only-right, Both) are stored as two option
// slots, so every presence combination has exactly one representation and
// equality is structural. The zero value is Neither.
type AnyOf[L, R any] struct {
	left  option.Option[L]
	right option.Option[R]
}

// New builds an AnyOf from two options, mapping the four input combinations
// onto the four states exactly.
func New[L, R any](left option.Option[L], right option.Option[R]) AnyOf[L, R] {
	return AnyOf[L, R]{left: left, right: right}
}

// Neither creates the empty state.
func Neither[L, R any]() AnyOf[L, R] {
	return AnyOf[L, R]{}
}

// NewLeft creates the exclusive-left state.
func NewLeft[L, R any](l L) AnyOf[L, R] {
	return AnyOf[L, R]{left: option.Some(l)}
}

// NewRight creates the exclusive-right state.
func NewRight[L, R any](r R) AnyOf[L, R] {
	return AnyOf[L, R]{right: option.Some(r)}
}

// NewBoth creates the state holding both values.
func NewBoth[L, R any](l L, r R) AnyOf[L, R] {
	return AnyOf[L, R]{left: option.Some(l), right: option.Some(r)}
}

// Shape reports the presence state.
func (a AnyOf[L, R]) Shape() Shape {
	switch {
	case a.left.IsSome() && a.right.IsSome():
		return ShapeBoth
	case a.left.IsSome():
		return ShapeLeft
	case a.right.IsSome():
		return ShapeRight
	default:
		return ShapeNeither
	}
}

// IsNeither reports whether no slot is filled.
func (a AnyOf[L, R]) IsNeither() bool {
	return a.left.IsNone() && a.right.IsNone()
}

// IsLeft reports the exclusive-left state. See HasLeft for "is there a
// usable left value at all".
func (a AnyOf[L, R]) IsLeft() bool {
	return a.left.IsSome() && a.right.IsNone()
}

// IsRight reports the exclusive-right state.
func (a AnyOf[L, R]) IsRight() bool {
	return a.right.IsSome() && a.left.IsNone()
}

// IsBoth reports whether both slots are filled.
func (a AnyOf[L, R]) IsBoth() bool {
	return a.left.IsSome() && a.right.IsSome()
}

// IsAny reports whether at least one slot is filled.
func (a AnyOf[L, R]) IsAny() bool {
	return a.left.IsSome() || a.right.IsSome()
}

// IsOne reports whether exactly one slot is filled.
func (a AnyOf[L, R]) IsOne() bool {
	return a.left.IsSome() != a.right.IsSome()
}

// IsNeitherOrBoth reports whether the slots agree: both empty or both filled.
func (a AnyOf[L, R]) IsNeitherOrBoth() bool {
	return a.left.IsSome() == a.right.IsSome()
}

// HasLeft reports whether a left value is present, exclusively or as part of
// Both.
func (a AnyOf[L, R]) HasLeft() bool {
	return a.left.IsSome()
}

// HasRight reports whether a right value is present, exclusively or as part
// of Both.
func (a AnyOf[L, R]) HasRight() bool {
	return a.right.IsSome()
}

// Left returns the left value if present.
func (a AnyOf[L, R]) Left() option.Option[L] {
	return a.left
}

// Right returns the right value if present.
func (a AnyOf[L, R]) Right() option.Option[R] {
	return a.right
}

// Options returns both slots. Together with New it round-trips every state.
func (a AnyOf[L, R]) Options() (option.Option[L], option.Option[R]) {
	return a.left, a.right
}
