package independent

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/gofineman/fineman/bfd"
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/partition"
	"github.com/gofineman/fineman/seed"
	"github.com/gofineman/fineman/weight"
)

// FindISOrCrust returns a random independent set or a crust covering
// u, the negative subset to cover; c and cPrime are the oversampling
// constants passed through to partition.HeavyLight and the rand_is
// attempt budget respectively.
//
// The original Python reseeds from a wall-clock tick and restarts
// without bound on a short U' or a run of failed rand_is attempts.
// This implementation instead forks src deterministically (seed.Fork)
// between attempts and caps the number of restarts at
// ceil(log2|V|)^2, returning ErrExhaustion past that cap.
func FindISOrCrust[W weight.Number](ctx context.Context, g *graph.Graph[W], u []int, c, cPrime float64, lim weight.Limits[W], src *seed.Source) (Result, error) {
	n := g.NumVertices()
	maxRetries := int(math.Ceil(math.Log2(float64(n))))
	maxRetries *= maxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	cur := src
	for attempt := 0; attempt < maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return Result{}, fmt.Errorf("independent: %w", ctx.Err())
		default:
		}

		res, ok, err := attemptOnce(ctx, g, u, c, cPrime, lim, cur)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return res, nil
		}
		cur = cur.Fork()
	}

	return Result{}, fmt.Errorf("%w: %d attempts", ErrExhaustion, maxRetries)
}

func attemptOnce[W weight.Number](ctx context.Context, g *graph.Graph[W], u []int, c, cPrime float64, lim weight.Limits[W], src *seed.Source) (Result, bool, error) {
	k := len(u)
	if k == 0 {
		return Result{}, false, fmt.Errorf("%w: empty negative subset", ErrExhaustion)
	}
	rho := int(math.Round(math.Cbrt(float64(k))))
	if rho < 1 {
		rho = 1
	}
	if rho > k {
		rho = k
	}

	heavy, light, err := partition.HeavyLight(ctx, g, u, rho, c, lim, src)
	if err != nil {
		return Result{}, false, fmt.Errorf("independent: %w", err)
	}

	if len(heavy) > 0 {
		heavyList := sortedKeys(heavy)
		y := heavyList[src.Rand().Intn(len(heavyList))]

		dist, err := bfd.BetaHopSTSP(ctx, g, y, 1, lim)
		if err != nil {
			return Result{}, false, fmt.Errorf("independent: %w", err)
		}

		var uPrime []int
		for _, uu := range u {
			if weight.Less(dist[uu], lim.Zero, lim) {
				uPrime = append(uPrime, uu)
			}
		}

		threshold := (1.0 / 8.0) * float64(k) / float64(rho)
		if float64(len(uPrime)) < threshold {
			return Result{}, false, nil
		}
		return Result{Crust: &Crust{Y: y, U: uPrime}}, true, nil
	}

	lightList := sortedKeys(light)
	attempts := int(math.Ceil(cPrime * math.Log2(float64(g.NumVertices()))))
	if attempts < 1 {
		attempts = 1
	}
	threshold := float64(rho) / 16.0

	for i := 0; i < attempts; i++ {
		is, err := randIS(ctx, g, lightList, rho, lim, src)
		if err != nil {
			return Result{}, false, fmt.Errorf("independent: %w", err)
		}
		if float64(len(is)) >= threshold {
			return Result{IS: is}, true, nil
		}
	}
	return Result{}, false, nil
}

// randIS samples ceil(rho/4) vertices from light, computes their
// subset-BFD negative reach over the whole graph, and returns the
// sampled vertices minus those reached — an independent set of the
// negative subgraph induced by light with high probability.
func randIS[W weight.Number](ctx context.Context, g *graph.Graph[W], light []int, rho int, lim weight.Limits[W], src *seed.Source) ([]int, error) {
	if len(light) == 0 {
		return nil, nil
	}
	sampleSize := int(math.Ceil(float64(rho) / 4.0))
	if sampleSize > len(light) {
		sampleSize = len(light)
	}
	perm := src.Rand().Perm(len(light))
	sample := make([]int, sampleSize)
	for i := 0; i < sampleSize; i++ {
		sample[i] = light[perm[i]]
	}

	dist, _, err := bfd.SubsetBFD(ctx, g, sample, 0, lim, false)
	if err != nil {
		return nil, err
	}

	reached := make(map[int]bool, len(dist))
	for v, d := range dist {
		if weight.Less(d, lim.Zero, lim) {
			reached[v] = true
		}
	}

	var independentSet []int
	for _, v := range sample {
		if !reached[v] {
			independentSet = append(independentSet, v)
		}
	}
	sort.Ints(independentSet)
	return independentSet, nil
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
