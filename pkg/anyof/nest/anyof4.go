package nest

import (
	"github.com/ib-77/anyof/pkg/anyof"
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// AnyOf4 combines four possible values by nesting two AnyOf pairs. Each leaf
// is addressed by the left/right path taken through the levels: ll, lr, rl,
// rr.
type AnyOf4[A, B, C, D any] = anyof.AnyOf[anyof.AnyOf[A, B], anyof.AnyOf[C, D]]

// New4 builds an AnyOf4 from four optional leaves. A half-subtree is built
// only when at least one of its leaves is present, so an all-absent input
// collapses to the canonical top-level Neither rather than a Both of two
// empty halves.
func New4[A, B, C, D any](ll option.Option[A], lr option.Option[B], rl option.Option[C], rr option.Option[D]) AnyOf4[A, B, C, D] {
	return anyof.New(half(ll, lr), half(rl, rr))
}

// half wraps a pair of leaves as a subtree, or reports the subtree absent
// when both leaves are.
func half[L, R any](l option.Option[L], r option.Option[R]) option.Option[anyof.AnyOf[L, R]] {
	if l.IsNone() && r.IsNone() {
		return option.None[anyof.AnyOf[L, R]]()
	}
	return option.Some(anyof.New(l, r))
}

// LL returns the left-left leaf if present.
func LL[A, B, C, D any](a AnyOf4[A, B, C, D]) option.Option[A] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[A]()
	}
	return h.Left()
}

// LR returns the left-right leaf if present.
func LR[A, B, C, D any](a AnyOf4[A, B, C, D]) option.Option[B] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[B]()
	}
	return h.Right()
}

// RL returns the right-left leaf if present.
func RL[A, B, C, D any](a AnyOf4[A, B, C, D]) option.Option[C] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[C]()
	}
	return h.Left()
}

// RR returns the right-right leaf if present.
func RR[A, B, C, D any](a AnyOf4[A, B, C, D]) option.Option[D] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[D]()
	}
	return h.Right()
}

// Opt4 is the flattened view of an AnyOf4: one option per leaf, in path
// order.
type Opt4[A, B, C, D any] struct {
	LL option.Option[A]
	LR option.Option[B]
	RL option.Option[C]
	RR option.Option[D]
}

// FromOpt4 builds an AnyOf4 from its flattened view.
func FromOpt4[A, B, C, D any](o Opt4[A, B, C, D]) AnyOf4[A, B, C, D] {
	return New4(o.LL, o.LR, o.RL, o.RR)
}

// ToOpt4 flattens an AnyOf4 by projecting each leaf accessor in path order.
func ToOpt4[A, B, C, D any](a AnyOf4[A, B, C, D]) Opt4[A, B, C, D] {
	return Opt4[A, B, C, D]{LL: LL(a), LR: LR(a), RL: RL(a), RR: RR(a)}
}
