package fineman

import (
	"context"
	"math"

	"github.com/gofineman/fineman/weight"
)

// Options configures a single Fineman invocation. Build one with
// DefaultOptions and override via the With* functional options below,
// following a functional-options idiom.
//
// Tau, Beta, C, CPrime    – betweenness reduction and independent-set/crust tuning constants.
// Threshold               – preprocessing's max-degree bound Delta (§4.C).
// MaxIterations           – elimination loop's budget cap (0 = derive
//
//	a default from |N| and |V|).
//
// Seed                    – the deterministic seed the whole pipeline's
//
//	randomness derives from, for reproducibility across runs; the
//	original Python hardcodes 42 for
//	betweenness_reduction, adopted here as the default.
//
// Ctx                     – cooperative cancellation, checked once per
//
//	outer relaxation round throughout the pipeline.
type Options[W weight.Number] struct {
	Tau           int
	Beta          int
	C             float64
	CPrime        float64
	Threshold     int
	MaxIterations int
	Seed          int64
	Ctx           context.Context
}

// Option is a functional option for Options.
type Option[W weight.Number] func(*Options[W])

// WithTau overrides the pivot-sample-size constant tau.
func WithTau[W weight.Number](tau int) Option[W] {
	return func(o *Options[W]) { o.Tau = tau }
}

// WithBeta overrides the bounded-hop-count constant beta.
func WithBeta[W weight.Number](beta int) Option[W] {
	return func(o *Options[W]) { o.Beta = beta }
}

// WithC overrides the oversampling constant c used by betweenness
// reduction and independent-set/crust extraction.
func WithC[W weight.Number](c float64) Option[W] {
	return func(o *Options[W]) { o.C = c }
}

// WithCPrime overrides the rand_is attempt-count constant c'.
func WithCPrime[W weight.Number](cPrime float64) Option[W] {
	return func(o *Options[W]) { o.CPrime = cPrime }
}

// WithThreshold overrides preprocessing's max-degree bound Delta.
func WithThreshold[W weight.Number](threshold int) Option[W] {
	return func(o *Options[W]) { o.Threshold = threshold }
}

// WithMaxIterations caps the elimination loop's outer round count.
func WithMaxIterations[W weight.Number](n int) Option[W] {
	return func(o *Options[W]) { o.MaxIterations = n }
}

// WithSeed fixes the deterministic seed every randomized stage derives
// from, directly or via seed.Source.Fork.
func WithSeed[W weight.Number](seed int64) Option[W] {
	return func(o *Options[W]) { o.Seed = seed }
}

// WithContext supplies a context checked for cancellation once per
// outer relaxation round throughout the pipeline.
func WithContext[W weight.Number](ctx context.Context) Option[W] {
	return func(o *Options[W]) { o.Ctx = ctx }
}

// DefaultOptions returns sensible defaults for a graph of n vertices:
// tau=1, beta and Threshold scaled to ceil(sqrt(n)) (typically
// Theta(sqrt(|V|))), c=2, c'=4, MaxIterations derived
// automatically, Seed=42, and a background context.
func DefaultOptions[W weight.Number](n int) Options[W] {
	sqrtN := int(math.Ceil(math.Sqrt(float64(n))))
	if sqrtN < 1 {
		sqrtN = 1
	}
	return Options[W]{
		Tau:           1,
		Beta:          sqrtN,
		C:             2,
		CPrime:        4,
		Threshold:     sqrtN,
		MaxIterations: 0,
		Seed:          42,
		Ctx:           context.Background(),
	}
}
