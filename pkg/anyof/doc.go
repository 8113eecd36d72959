// Package anyof provides AnyOf[L, R], a value that holds zero, one, or both
// of two sides, together with the conversions joining it to the either and
// both packages.
//
// An AnyOf is always in one of four shapes: Neither, Left, Right, or Both.
// Each presence combination has exactly one representation, so values
// compare structurally with ==.
//
// Key operations:
// - New/Neither/NewLeft/NewRight/NewBoth: construction from options or values
// - FromEither/FromBoth/FromCouple: total lifts from the sibling types
// - Left/Right/Options, Shape, Is*/Has* predicates: inspection
// - WithLeft/WithRight, FilterLeft/FilterRight, Swap: pure updates
// - Combine: slot-wise merge where the receiver's filled slots win
// - Filter: slot-wise mask removing the sides filled in the operand
// - Map/MapLeft/MapRight: transform present sides only
// - IntoEither/IntoBoth (+ Must* twins): partial conversions that fail
//   loudly on a shape mismatch
//
// All operations are pure; every method returns a new value. Shape-mismatch
// failures are the only error condition in the package.
package anyof
