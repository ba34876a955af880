// Package seed provides an injected, forkable random source for the
// randomized subsystems of the Fineman pipeline (betweenness reduction,
// heavy/light partition, and independent-set/crust extraction together
// with its restarts).
//
// Every stochastic choice in this module flows through a *Source
// instead of calling into a package-global *rand.Rand, so a run is
// fully reproducible given a single top-level seed, and a restart
// derives its next seed from a monotonic counter rather than a
// wall-clock tick. This mirrors builder/options.go's WithSeed/WithRand
// pattern and avoids the non-reproducibility of wall-clock reseeding.
package seed
