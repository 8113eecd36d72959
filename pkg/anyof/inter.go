package anyof

import (
	"github.com/ib-77/anyof/pkg/anyof/both"
	"github.com/ib-77/anyof/pkg/anyof/either"
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// LeftRight is implemented by every combinator that exposes its two slots as
// options: AnyOf, either.Either, and both.Both.
type LeftRight[L, R any] interface {
	// Options returns the left and right slots.
	Options() (option.Option[L], option.Option[R])
}

// Unwrapper extends LeftRight with fallback extraction of each side.
type Unwrapper[L, R any] interface {
	LeftRight[L, R]
	// LeftOr returns the left value or the given default.
	LeftOr(def L) L
	// RightOr returns the right value or the given default.
	RightOr(def R) R
}

var (
	_ Unwrapper[int, string] = AnyOf[int, string]{}
	_ Unwrapper[int, string] = either.Either[int, string]{}
	_ Unwrapper[int, string] = both.Both[int, string]{}
)

// FromLeftRight lifts any LeftRight value into an AnyOf with the same
// slot contents.
func FromLeftRight[L, R any](v LeftRight[L, R]) AnyOf[L, R] {
	return New(v.Options())
}
