// Package option provides a small Option[T] value container used across the
// anyof packages as the spelling of an optional slot.
//
// Key operations:
// - Some/None: construct an Option
// - Get/IsSome/IsNone: inspect without panics
// - Unwrap/UnwrapOr/UnwrapOrElse/UnwrapOrZero: extract with or without fallback
// - Or: keep the first filled option of two
// - Map: transform the value if present
//
// Option[T] is comparable whenever T is, so options take part in structural
// equality of the combinator types built on top of them.
package option
