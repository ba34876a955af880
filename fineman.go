package fineman

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofineman/fineman/bfd"
	"github.com/gofineman/fineman/betweenness"
	"github.com/gofineman/fineman/eliminate"
	"github.com/gofineman/fineman/finalscan"
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/independent"
	"github.com/gofineman/fineman/preprocess"
	"github.com/gofineman/fineman/seed"
	"github.com/gofineman/fineman/weight"
)

// Fineman computes single-source shortest-path distances from source
// to every vertex of g, which may carry negative edge weights but must
// not contain a cycle reachable from source whose total weight is
// negative; a negative cycle elsewhere in g, one source can never
// reach, does not affect the result. It restricts its work to the
// subgraph reachable from source, runs preprocessing, the
// betweenness-reduction and independent-set-or-crust elimination loop,
// and a final non-negative scan in sequence, returning one Distance
// per original vertex id (vertices outside the reachable subgraph come
// back Unreachable).
func Fineman[W weight.Number](g *graph.Graph[W], source int, lim weight.Limits[W], opts ...Option[W]) ([]Distance[W], error) {
	n := g.NumVertices()
	o := DefaultOptions[W](n)
	for _, opt := range opts {
		opt(&o)
	}

	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d", ErrInvalidParameter, source)
	}
	if o.Tau < 1 || o.Tau > n || o.Beta < 1 || o.C <= 1 || o.Threshold < 1 {
		return nil, fmt.Errorf("%w: tau=%d beta=%d c=%g threshold=%d", ErrInvalidParameter, o.Tau, o.Beta, o.C, o.Threshold)
	}

	ctx := o.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	reachable, toOriginal := restrictToReachable(g, source)

	working, negIndex, proj, err := preprocess.Preprocess(reachable, o.Threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	src := seed.New(o.Seed)
	elimParams := eliminate.Params{
		Tau:           o.Tau,
		Beta:          o.Beta,
		C:             o.C,
		CPrime:        o.CPrime,
		MaxIterations: o.MaxIterations,
		Source:        src,
	}

	finalGraph, phi, err := eliminate.Loop(ctx, working, negIndex, lim, elimParams)
	if err != nil {
		return nil, translateLoopError[W](err)
	}

	if detected, witness, verifyErr := verifyNonNegativeAndExtractWitness(ctx, finalGraph, lim); verifyErr != nil {
		return nil, translateLoopError[W](verifyErr)
	} else if detected {
		return nil, &NegativeCycle[W]{Witness: translateWitness(witness, toOriginal)}
	}

	const reachableSource = 0 // restrictToReachable always places source at id 0
	dist, parent, err := finalscan.Scan(finalGraph, reachableSource, lim, true)
	if err != nil {
		return nil, fmt.Errorf("fineman: %w", err)
	}

	result := make([]Distance[W], n)
	for i := range result {
		result[i] = Distance[W]{Unreachable: true}
	}
	for v := 0; v < proj.OriginalCount; v++ {
		d, ok := dist[v]
		if !ok || weight.IsInf(d, lim) {
			continue
		}
		result[toOriginal[v]] = Distance[W]{Value: d - phi[reachableSource] + phi[v]}
	}

	_ = parent // reserved for future path-reconstruction entry points
	return result, nil
}

// translateLoopError maps the elimination loop's internal sentinels
// onto this package's public error kinds.
func translateLoopError[W weight.Number](err error) error {
	switch {
	case errors.Is(err, betweenness.ErrNegativeCycleDetected):
		return &NegativeCycle[W]{}
	case errors.Is(err, independent.ErrExhaustion):
		return fmt.Errorf("%w", ErrExhaustion)
	case errors.Is(err, eliminate.ErrBudgetExhausted):
		return fmt.Errorf("%w", ErrExhaustion)
	case errors.Is(err, bfd.ErrCancelled), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w", ErrCancelled)
	default:
		return fmt.Errorf("fineman: %w", err)
	}
}
