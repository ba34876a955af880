// Package weight defines the numeric trait the rest of this module is
// parameterized over, so the price-function pipeline works identically
// for exact integer weights, IEEE-754 real weights, and exact
// fixed-point decimal weights without any process-wide configuration.
//
// Number is satisfied directly by int64 and float64 (both support the
// native +, -, < operators Go generics require) and by Fixed, a
// fixed-point decimal type backed by int64. Limits supplies the zero
// value, an unreachable/"infinity" sentinel, and a comparison epsilon
// for the instantiation in use; callers pick one of IntLimits,
// RealLimits, or FixedLimits at the call site instead of mutating a
// global.
package weight
