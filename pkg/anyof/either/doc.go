// Package either provides Either[L, R], a disjoint choice that holds exactly
// one of two values. It never holds both or neither; which side is active is
// fixed at construction.
//
// Key operations:
// - Left/Right: tagged construction
// - IsLeft/IsRight: tag tests
// - Left/Right/Options: option-bearing accessors
// - LeftOr/LeftOrElse/LeftOrZero/MustLeft (and right-side twins): extraction
// - Swap: exchange sides and type positions
// - Map/MapLeft/MapRight: transform the active side only
// - FromOptions: partial construction from a pair of options
package either
