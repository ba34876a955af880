package weight

import "math"

// Number is the numeric trait every weight type in this module must
// satisfy: native addition, negation, and ordering. int64 and float64
// satisfy it directly; Fixed (below) satisfies it because it is defined
// as ~int64.
type Number interface {
	~int64 | ~float64
}

// FixedScale is the number of implied fractional decimal digits carried
// by a Fixed value: a Fixed of 12345 with FixedScale 2 represents 123.45.
// It is a package constant rather than a per-value field so that Fixed
// remains a plain ~int64 and keeps native operator support under Go
// generics, so decimal-fixed arithmetic stays exact.
const FixedScale = 4

// fixedUnit is 10^FixedScale, the value one unit of Fixed represents.
const fixedUnit = 10000

// Fixed is an exact fixed-point decimal weight: an int64 scaled by
// fixedUnit. Arithmetic on Fixed values is exact (no rounding), unlike
// float64. Use NewFixed to construct one from a decimal float literal at
// the boundary; all internal arithmetic stays integer.
type Fixed int64

// NewFixed converts a float64 decimal literal to a Fixed value, rounding
// to the nearest representable unit. Intended for boundary conversion
// only (test fixtures, entry-point input); the pipeline itself never
// performs this conversion internally.
func NewFixed(v float64) Fixed {
	return Fixed(math.Round(v * fixedUnit))
}

// Float64 converts a Fixed value back to a float64 for display or
// comparison against a float oracle.
func (f Fixed) Float64() float64 {
	return float64(f) / fixedUnit
}

// Limits bundles the identity and sentinel values a weight
// instantiation needs: Zero for seeding relaxations, PosInf for
// "unreachable" bookkeeping inside BFD loops, and Eps for
// equal-enough comparisons against a floating oracle. Integer
// instantiations use Eps == Zero (exact comparison).
type Limits[W Number] struct {
	Zero   W
	PosInf W
	Eps    W
}

// IntLimits returns the Limits for plain int64 weights: exact arithmetic,
// math.MaxInt64 standing in for "unreachable".
func IntLimits() Limits[int64] {
	return Limits[int64]{Zero: 0, PosInf: math.MaxInt64, Eps: 0}
}

// RealLimits returns the Limits for IEEE-754 float64 weights, with a
// 1e-9 absolute tolerance for comparisons against a Bellman-Ford
// oracle.
func RealLimits() Limits[float64] {
	return Limits[float64]{Zero: 0, PosInf: math.Inf(1), Eps: 1e-9}
}

// FixedLimits returns the Limits for Fixed decimal weights: exact
// arithmetic, a large sentinel standing in for "unreachable" that still
// leaves headroom for accumulation without overflowing int64.
func FixedLimits() Limits[Fixed] {
	return Limits[Fixed]{Zero: 0, PosInf: Fixed(math.MaxInt64 / 4), Eps: 0}
}

// Add is a tiny free function wrapper kept for readability at call
// sites that otherwise mix generic arithmetic with named helpers
// (IsInf, below); W+W is always valid for W Number, this just names it.
func Add[W Number](a, b W) W { return a + b }

// IsInf reports whether v has reached or exceeded the instantiation's
// PosInf sentinel, i.e. should be treated as unreachable.
func IsInf[W Number](v W, lim Limits[W]) bool {
	return v >= lim.PosInf
}

// Less reports a < b using the instantiation's Eps so that two values
// within Eps of each other are never considered strictly ordered; this
// keeps real-64 tie-breaking stable under floating rounding noise.
func Less[W Number](a, b W, lim Limits[W]) bool {
	return a < b-lim.Eps
}
