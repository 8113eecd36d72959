package anyof

import (
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// WithLeft sets or replaces the left value, preserving any right value:
// Neither becomes Left, Right becomes Both, Left and Both keep their shape
// with the new value.
func (a AnyOf[L, R]) WithLeft(l L) AnyOf[L, R] {
	return AnyOf[L, R]{left: option.Some(l), right: a.right}
}

// WithRight sets or replaces the right value, preserving any left value.
func (a AnyOf[L, R]) WithRight(r R) AnyOf[L, R] {
	return AnyOf[L, R]{left: a.left, right: option.Some(r)}
}

// FilterLeft discards any right value, keeping only the left side. Neither
// stays Neither.
func (a AnyOf[L, R]) FilterLeft() AnyOf[L, R] {
	return AnyOf[L, R]{left: a.left}
}

// FilterRight discards any left value, keeping only the right side. Neither
// stays Neither.
func (a AnyOf[L, R]) FilterRight() AnyOf[L, R] {
	return AnyOf[L, R]{right: a.right}
}

// Swap exchanges the two slots along with their type positions.
func (a AnyOf[L, R]) Swap() AnyOf[R, L] {
	return AnyOf[R, L]{left: a.right, right: a.left}
}

// Combine merges two values slot by slot, preferring the receiver's value
// whenever its slot is filled:
//
//   - Neither is the identity on either side,
//   - Both as the receiver wins outright,
//   - disjoint single sides merge into Both,
//   - same-side singles keep the receiver's value.
func (a AnyOf[L, R]) Combine(other AnyOf[L, R]) AnyOf[L, R] {
	return AnyOf[L, R]{
		left:  a.left.Or(other.left),
		right: a.right.Or(other.right),
	}
}

// Filter removes from the receiver every side that is filled in other. Only
// other's shape matters; its payloads are never inspected. A Neither mask
// leaves the receiver unchanged, a Both mask empties it.
func (a AnyOf[L, R]) Filter(other AnyOf[L, R]) AnyOf[L, R] {
	out := a
	if other.left.IsSome() {
		out.left = option.None[L]()
	}
	if other.right.IsSome() {
		out.right = option.None[R]()
	}
	return out
}

// Map transforms each side with the matching function, invoking a function
// only when its side is present. Neither maps to Neither with zero
// invocations.
func Map[L, R, L2, R2 any](a AnyOf[L, R], fl func(L) L2, fr func(R) R2) AnyOf[L2, R2] {
	return AnyOf[L2, R2]{
		left:  option.Map(a.left, fl),
		right: option.Map(a.right, fr),
	}
}

// MapLeft transforms the left value if present.
func MapLeft[L, R, L2 any](a AnyOf[L, R], f func(L) L2) AnyOf[L2, R] {
	return Map(a, f, func(r R) R { return r })
}

// MapRight transforms the right value if present.
func MapRight[L, R, R2 any](a AnyOf[L, R], f func(R) R2) AnyOf[L, R2] {
	return Map(a, func(l L) L { return l }, f)
}
