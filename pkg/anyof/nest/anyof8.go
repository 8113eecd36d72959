package nest

import (
	"github.com/ib-77/anyof/pkg/anyof"
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// AnyOf8 combines eight possible values by nesting two AnyOf4 halves.
type AnyOf8[A, B, C, D, E, F, G, H any] = anyof.AnyOf[AnyOf4[A, B, C, D], AnyOf4[E, F, G, H]]

// New8 builds an AnyOf8 from eight optional leaves, collapsing each
// all-absent half to an absent subtree.
func New8[A, B, C, D, E, F, G, H any](
	lll option.Option[A], llr option.Option[B], lrl option.Option[C], lrr option.Option[D],
	rll option.Option[E], rlr option.Option[F], rrl option.Option[G], rrr option.Option[H],
) AnyOf8[A, B, C, D, E, F, G, H] {
	return anyof.New(half4(lll, llr, lrl, lrr), half4(rll, rlr, rrl, rrr))
}

func half4[A, B, C, D any](a option.Option[A], b option.Option[B], c option.Option[C], d option.Option[D]) option.Option[AnyOf4[A, B, C, D]] {
	if a.IsNone() && b.IsNone() && c.IsNone() && d.IsNone() {
		return option.None[AnyOf4[A, B, C, D]]()
	}
	return option.Some(New4(a, b, c, d))
}

// LLL returns the left-left-left leaf if present.
func LLL[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) option.Option[A] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[A]()
	}
	return LL(h)
}

// LLR returns the left-left-right leaf if present.
func LLR[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) option.Option[B] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[B]()
	}
	return LR(h)
}

// LRL returns the left-right-left leaf if present.
func LRL[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) option.Option[C] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[C]()
	}
	return RL(h)
}

// LRR returns the left-right-right leaf if present.
func LRR[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) option.Option[D] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[D]()
	}
	return RR(h)
}

// RLL returns the right-left-left leaf if present.
func RLL[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) option.Option[E] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[E]()
	}
	return LL(h)
}

// RLR returns the right-left-right leaf if present.
func RLR[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) option.Option[F] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[F]()
	}
	return LR(h)
}

// RRL returns the right-right-left leaf if present.
func RRL[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) option.Option[G] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[G]()
	}
	return RL(h)
}

// RRR returns the right-right-right leaf if present.
func RRR[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) option.Option[H] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[H]()
	}
	return RR(h)
}

// Opt8 is the flattened view of an AnyOf8: one option per leaf, in path
// order.
type Opt8[A, B, C, D, E, F, G, H any] struct {
	LLL option.Option[A]
	LLR option.Option[B]
	LRL option.Option[C]
	LRR option.Option[D]
	RLL option.Option[E]
	RLR option.Option[F]
	RRL option.Option[G]
	RRR option.Option[H]
}

// FromOpt8 builds an AnyOf8 from its flattened view.
func FromOpt8[A, B, C, D, E, F, G, H any](o Opt8[A, B, C, D, E, F, G, H]) AnyOf8[A, B, C, D, E, F, G, H] {
	return New8(o.LLL, o.LLR, o.LRL, o.LRR, o.RLL, o.RLR, o.RRL, o.RRR)
}

// ToOpt8 flattens an AnyOf8 by projecting each leaf accessor in path order.
func ToOpt8[A, B, C, D, E, F, G, H any](a AnyOf8[A, B, C, D, E, F, G, H]) Opt8[A, B, C, D, E, F, G, H] {
	return Opt8[A, B, C, D, E, F, G, H]{
		LLL: LLL(a), LLR: LLR(a), LRL: LRL(a), LRR: LRR(a),
		RLL: RLL(a), RLR: RLR(a), RRL: RRL(a), RRR: RRR(a),
	}
}
