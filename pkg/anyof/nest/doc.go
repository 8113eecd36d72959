// Package nest builds higher-arity combinators by nesting AnyOf pairs:
// AnyOf4 is an AnyOf of two AnyOf halves, AnyOf8 an AnyOf of two AnyOf4
// halves, and AnyOf16 an AnyOf of two AnyOf8 halves.
//
// The types are aliases, so the full AnyOf method set (Shape, Combine,
// Filter, Swap, ...) applies at every nesting level. Each leaf is addressed
// by the left/right path through the levels; the path names the accessor:
// LL(a) reads the left-left leaf of an AnyOf4, RRR(a) the right-right-right
// leaf of an AnyOf8, and so on.
//
// Key operations:
// - New4/New8/New16: construct from per-leaf options; an all-absent half
//   collapses to an absent subtree, so fully empty input is the canonical
//   top-level Neither
// - LL..RR, LLL..RRR, LLLL..RRRR: lazy short-circuit leaf accessors
// - Opt4/Opt8/Opt16 with FromOptN/ToOptN: flattened per-leaf views
//
// The package adds no failure modes beyond those of AnyOf itself.
package nest
