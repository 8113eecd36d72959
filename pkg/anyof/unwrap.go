package anyof

import (
	"github.com/ib-77/anyof/pkg/anyof/both"
)

// LeftOr returns the left value, or def when no left value is present.
func (a AnyOf[L, R]) LeftOr(def L) L {
	return a.left.UnwrapOr(def)
}

// LeftOrElse returns the left value, or computes one when absent.
func (a AnyOf[L, R]) LeftOrElse(f func() L) L {
	return a.left.UnwrapOrElse(f)
}

// LeftOrZero returns the left value, or the zero value of L.
func (a AnyOf[L, R]) LeftOrZero() L {
	return a.left.UnwrapOrZero()
}

// MustLeft returns the left value. Panics unless the shape is Left or Both.
func (a AnyOf[L, R]) MustLeft() L {
	l, ok := a.left.Get()
	if !ok {
		panic(shapeErr("Left or Both", a.Shape()))
	}
	return l
}

// ExpectLeft returns the left value, panicking with msg when absent.
func (a AnyOf[L, R]) ExpectLeft(msg string) L {
	l, ok := a.left.Get()
	if !ok {
		panic(msg)
	}
	return l
}

// RightOr returns the right value, or def when no right value is present.
func (a AnyOf[L, R]) RightOr(def R) R {
	return a.right.UnwrapOr(def)
}

// RightOrElse returns the right value, or computes one when absent.
func (a AnyOf[L, R]) RightOrElse(f func() R) R {
	return a.right.UnwrapOrElse(f)
}

// RightOrZero returns the right value, or the zero value of R.
func (a AnyOf[L, R]) RightOrZero() R {
	return a.right.UnwrapOrZero()
}

// MustRight returns the right value. Panics unless the shape is Right or
// Both.
func (a AnyOf[L, R]) MustRight() R {
	r, ok := a.right.Get()
	if !ok {
		panic(shapeErr("Right or Both", a.Shape()))
	}
	return r
}

// ExpectRight returns the right value, panicking with msg when absent.
func (a AnyOf[L, R]) ExpectRight(msg string) R {
	r, ok := a.right.Get()
	if !ok {
		panic(msg)
	}
	return r
}

// BothOr returns the two values as a pair, filling any absent side from def.
func (a AnyOf[L, R]) BothOr(def both.Both[L, R]) both.Both[L, R] {
	return a.BothOrElse(func() both.Both[L, R] { return def })
}

// BothOrElse returns the two values as a pair. Absent sides are filled from
// the pair computed by f; f runs only when at least one side is missing.
func (a AnyOf[L, R]) BothOrElse(f func() both.Both[L, R]) both.Both[L, R] {
	l, hasL := a.left.Get()
	r, hasR := a.right.Get()

	switch {
	case hasL && hasR:
		return both.New(l, r)
	case hasL:
		return both.New(l, f().Right)
	case hasR:
		return both.New(f().Left, r)
	default:
		return f()
	}
}

// BothOrNone returns the two values as a pair when the shape is Both, and
// nothing otherwise.
func (a AnyOf[L, R]) BothOrNone() (both.Both[L, R], bool) {
	l, hasL := a.left.Get()
	r, hasR := a.right.Get()
	if !hasL || !hasR {
		return both.Both[L, R]{}, false
	}
	return both.New(l, r), true
}

// MustBoth returns the two values as a pair. Panics unless the shape is
// Both.
func (a AnyOf[L, R]) MustBoth() both.Both[L, R] {
	b, ok := a.BothOrNone()
	if !ok {
		panic(shapeErr("Both", a.Shape()))
	}
	return b
}
