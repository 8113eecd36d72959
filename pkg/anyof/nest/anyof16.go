package nest

import (
	"github.com/ib-77/anyof/pkg/anyof"
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// AnyOf16 combines sixteen possible values by nesting two AnyOf8 halves.
// Handle with care.
type AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any] = anyof.AnyOf[AnyOf8[A, B, C, D, E, F, G, H], AnyOf8[I, J, K, L, M, N, O, P]]

// New16 builds an AnyOf16 from sixteen optional leaves, collapsing each
// all-absent half to an absent subtree.
func New16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](
	llll option.Option[A], lllr option.Option[B], llrl option.Option[C], llrr option.Option[D],
	lrll option.Option[E], lrlr option.Option[F], lrrl option.Option[G], lrrr option.Option[H],
	rlll option.Option[I], rllr option.Option[J], rlrl option.Option[K], rlrr option.Option[L],
	rrll option.Option[M], rrlr option.Option[N], rrrl option.Option[O], rrrr option.Option[P],
) AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P] {
	return anyof.New(
		half8(llll, lllr, llrl, llrr, lrll, lrlr, lrrl, lrrr),
		half8(rlll, rllr, rlrl, rlrr, rrll, rrlr, rrrl, rrrr),
	)
}

func half8[A, B, C, D, E, F, G, H any](
	a option.Option[A], b option.Option[B], c option.Option[C], d option.Option[D],
	e option.Option[E], f option.Option[F], g option.Option[G], h option.Option[H],
) option.Option[AnyOf8[A, B, C, D, E, F, G, H]] {
	if a.IsNone() && b.IsNone() && c.IsNone() && d.IsNone() &&
		e.IsNone() && f.IsNone() && g.IsNone() && h.IsNone() {
		return option.None[AnyOf8[A, B, C, D, E, F, G, H]]()
	}
	return option.Some(New8(a, b, c, d, e, f, g, h))
}

// LLLL returns the left-left-left-left leaf if present.
func LLLL[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[A] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[A]()
	}
	return LLL(h)
}

// LLLR returns the left-left-left-right leaf if present.
func LLLR[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[B] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[B]()
	}
	return LLR(h)
}

// LLRL returns the left-left-right-left leaf if present.
func LLRL[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[C] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[C]()
	}
	return LRL(h)
}

// LLRR returns the left-left-right-right leaf if present.
func LLRR[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[D] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[D]()
	}
	return LRR(h)
}

// LRLL returns the left-right-left-left leaf if present.
func LRLL[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[E] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[E]()
	}
	return RLL(h)
}

// LRLR returns the left-right-left-right leaf if present.
func LRLR[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[F] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[F]()
	}
	return RLR(h)
}

// LRRL returns the left-right-right-left leaf if present.
func LRRL[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[G] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[G]()
	}
	return RRL(h)
}

// LRRR returns the left-right-right-right leaf if present.
func LRRR[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[H] {
	h, ok := a.Left().Get()
	if !ok {
		return option.None[H]()
	}
	return RRR(h)
}

// RLLL returns the right-left-left-left leaf if present.
func RLLL[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[I] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[I]()
	}
	return LLL(h)
}

// RLLR returns the right-left-left-right leaf if present.
func RLLR[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[J] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[J]()
	}
	return LLR(h)
}

// RLRL returns the right-left-right-left leaf if present.
func RLRL[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[K] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[K]()
	}
	return LRL(h)
}

// RLRR returns the right-left-right-right leaf if present.
func RLRR[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[L] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[L]()
	}
	return LRR(h)
}

// RRLL returns the right-right-left-left leaf if present.
func RRLL[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[M] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[M]()
	}
	return RLL(h)
}

// RRLR returns the right-right-left-right leaf if present.
func RRLR[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[N] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[N]()
	}
	return RLR(h)
}

// RRRL returns the right-right-right-left leaf if present.
func RRRL[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[O] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[O]()
	}
	return RRL(h)
}

// RRRR returns the right-right-right-right leaf if present.
func RRRR[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) option.Option[P] {
	h, ok := a.Right().Get()
	if !ok {
		return option.None[P]()
	}
	return RRR(h)
}

// Opt16 is the flattened view of an AnyOf16: one option per leaf, in path
// order.
type Opt16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any] struct {
	LLLL option.Option[A]
	LLLR option.Option[B]
	LLRL option.Option[C]
	LLRR option.Option[D]
	LRLL option.Option[E]
	LRLR option.Option[F]
	LRRL option.Option[G]
	LRRR option.Option[H]
	RLLL option.Option[I]
	RLLR option.Option[J]
	RLRL option.Option[K]
	RLRR option.Option[L]
	RRLL option.Option[M]
	RRLR option.Option[N]
	RRRL option.Option[O]
	RRRR option.Option[P]
}

// FromOpt16 builds an AnyOf16 from its flattened view.
func FromOpt16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](o Opt16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P] {
	return New16(
		o.LLLL, o.LLLR, o.LLRL, o.LLRR, o.LRLL, o.LRLR, o.LRRL, o.LRRR,
		o.RLLL, o.RLLR, o.RLRL, o.RLRR, o.RRLL, o.RRLR, o.RRRL, o.RRRR,
	)
}

// ToOpt16 flattens an AnyOf16 by projecting each leaf accessor in path
// order.
func ToOpt16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any](a AnyOf16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) Opt16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P] {
	return Opt16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]{
		LLLL: LLLL(a), LLLR: LLLR(a), LLRL: LLRL(a), LLRR: LLRR(a),
		LRLL: LRLL(a), LRLR: LRLR(a), LRRL: LRRL(a), LRRR: LRRR(a),
		RLLL: RLLL(a), RLLR: RLLR(a), RLRL: RLRL(a), RLRR: RLRR(a),
		RRLL: RRLL(a), RRLR: RRLR(a), RRRL: RRRL(a), RRRR: RRRR(a),
	}
}
