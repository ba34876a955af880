package partition

import (
	"context"
	"fmt"
	"math"

	"github.com/gofineman/fineman/bfd"
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/seed"
	"github.com/gofineman/fineman/weight"
)

// HeavyLight classifies the negative subset U into Heavy and Light;
// rho must satisfy 1<=rho<=|U|. c is the same oversampling
// constant used elsewhere in the pipeline (c>1).
//
// Each of ceil(c*log|V|) independent rounds draws U' by an independent
// Bernoulli(rho/|U|) coin per member of U, computes the one-hop
// negative-path reach R of U' via bfd.SubsetBFD, and increments a
// per-vertex hit counter for every v in R. Vertices hit at least
// (c/2)*ceil(log|V|) times land in Heavy; the rest of U is Light.
func HeavyLight[W weight.Number](ctx context.Context, g *graph.Graph[W], u []int, rho int, c float64, lim weight.Limits[W], src *seed.Source) (heavy, light map[int]bool, err error) {
	n := g.NumVertices()
	k := len(u)
	if rho < 1 || rho > k {
		return nil, nil, fmt.Errorf("%w: rho=%d |U|=%d", ErrInvalidParameter, rho, k)
	}
	sampleProb := float64(rho) / float64(k)
	if sampleProb < 0 || sampleProb > 1 {
		return nil, nil, fmt.Errorf("%w: sample probability=%g", ErrInvalidParameter, sampleProb)
	}

	logN := math.Log(float64(n))
	rounds := int(math.Ceil(c * logN))
	if rounds < 1 {
		rounds = 1
	}
	heavyThreshold := (c / 2) * math.Ceil(logN)

	count := make([]int, n)
	rng := src.Rand()

	for round := 0; round < rounds; round++ {
		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("partition: %w", ctx.Err())
		default:
		}

		var sample []int
		for _, v := range u {
			if rng.Float64() < sampleProb {
				sample = append(sample, v)
			}
		}
		if len(sample) == 0 {
			continue
		}

		dist, _, err := bfd.SubsetBFD(ctx, g, sample, 1, lim, false)
		if err != nil {
			return nil, nil, fmt.Errorf("partition: %w", err)
		}
		for v, d := range dist {
			if weight.Less(d, lim.Zero, lim) {
				count[v]++
			}
		}
	}

	heavy = make(map[int]bool)
	light = make(map[int]bool)
	for _, v := range u {
		if float64(count[v]) >= heavyThreshold {
			heavy[v] = true
		} else {
			light[v] = true
		}
	}
	return heavy, light, nil
}
