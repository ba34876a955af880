package eliminate

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/gofineman/fineman/bfd"
	"github.com/gofineman/fineman/betweenness"
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/independent"
	"github.com/gofineman/fineman/weight"
)

// Loop alternates betweenness reduction and
// independent-set/crust extraction, accumulating a price function and
// reweighting after each stage, until the negative-edge set empties or
// the iteration budget is exhausted. It returns the final reweighted
// graph and the total accumulated price function; the caller
// (fineman.Fineman) composes this with any price function preprocessing
// already applied and recovers true distances afterward.
func Loop[W weight.Number](ctx context.Context, g *graph.Graph[W], neg graph.EdgeSet[W], lim weight.Limits[W], p Params) (*graph.Graph[W], map[int]W, error) {
	phi := map[int]W{}
	maxIter := p.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultBudget(len(neg), g.NumVertices())
	}

	for iter := 0; iter < maxIter; iter++ {
		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("eliminate: %w", ctx.Err())
		default:
		}

		if len(neg) == 0 {
			return g, phi, nil
		}

		phi1, err := betweenness.Reduce(ctx, g, lim, betweenness.Params{Tau: p.Tau, Beta: p.Beta, C: p.C, Source: p.Source})
		if err != nil {
			return nil, nil, fmt.Errorf("eliminate: %w", err)
		}
		g, neg = graph.Reweight(g, phi1)
		phi = graph.Compose(phi, phi1)

		if len(neg) == 0 {
			return g, phi, nil
		}

		u := sortedHeads(neg)

		res, err := independent.FindISOrCrust(ctx, g, u, p.C, p.CPrime, lim, p.Source)
		if err != nil {
			return nil, nil, fmt.Errorf("eliminate: %w", err)
		}

		var phi2 map[int]W
		if res.IS != nil {
			phi2 = isPriceFunction(res.IS, neg)
		} else {
			phi2, err = crustPriceFunction(ctx, g, res.Crust.U, lim)
			if err != nil {
				return nil, nil, fmt.Errorf("eliminate: %w", err)
			}
		}

		g, neg = graph.Reweight(g, phi2)
		phi = graph.Compose(phi, phi2)
	}

	if len(neg) == 0 {
		return g, phi, nil
	}
	return nil, nil, ErrBudgetExhausted
}

// isPriceFunction handles the independent-set
// case: every vertex in is gets shifted downward by the absolute value
// of its heaviest incoming negative edge, which cancels that edge
// exactly (and leaves every other incoming edge at v non-negative,
// since that edge was the minimum) without ever touching a vertex
// outside the set.
func isPriceFunction[W weight.Number](is []int, neg graph.EdgeSet[W]) map[int]W {
	target := make(map[int]bool, len(is))
	for _, v := range is {
		target[v] = true
	}
	phi := make(map[int]W, len(is))
	for ref, w := range neg {
		if !target[ref.To] {
			continue
		}
		if cur, ok := phi[ref.To]; !ok || w < cur {
			phi[ref.To] = w
		}
	}
	return phi
}

// crustPriceFunction handles the crust case: run a
// bounded-hop BFD seeded at uPrime on the transposed graph, so
// dist[v] is the minimum weight of any path from v to some member of
// uPrime in g. Negating that distance and using it as a potential
// cancels (or overcancels, staying non-negative) every edge directly
// incident on uPrime along a shortest such path, per the standard
// Bellman-Ford reweighting identity.
func crustPriceFunction[W weight.Number](ctx context.Context, g *graph.Graph[W], uPrime []int, lim weight.Limits[W]) (map[int]W, error) {
	gt := graph.Transpose(g)
	dist, _, err := bfd.SubsetBFD(ctx, gt, uPrime, 0, lim, false)
	if err != nil {
		return nil, err
	}
	phi := make(map[int]W, len(dist))
	for v, d := range dist {
		if weight.IsInf(d, lim) {
			continue
		}
		phi[v] = -d
	}
	return phi, nil
}

func sortedHeads[W weight.Number](neg graph.EdgeSet[W]) []int {
	seen := map[int]bool{}
	out := make([]int, 0, len(neg))
	for ref := range neg {
		if !seen[ref.To] {
			seen[ref.To] = true
			out = append(out, ref.To)
		}
	}
	sort.Ints(out)
	return out
}

// defaultBudget derives an iteration cap from the expected
// O(|N|^(1/3)*polylog|V|) outer-round bound when the caller does not
// name an explicit one.
func defaultBudget(negCount, n int) int {
	logN := math.Log2(float64(n) + 2)
	budget := math.Ceil(math.Cbrt(float64(negCount)+1) * logN * logN * 4)
	if budget < 1 {
		budget = 1
	}
	return int(budget)
}
