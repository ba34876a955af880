package fineman

import (
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// bellmanFordOracle is a small in-package standard Bellman-Ford
// implementation used only by tests to validate Fineman's output and
// to independently confirm the presence of a negative cycle.
func bellmanFordOracle[W weight.Number](g *graph.Graph[W], source int, lim weight.Limits[W]) (dist []W, hasNegativeCycle bool) {
	n := g.NumVertices()
	dist = make([]W, n)
	for v := range dist {
		dist[v] = lim.PosInf
	}
	dist[source] = lim.Zero

	for i := 0; i < n-1; i++ {
		changed := false
		for u := 0; u < n; u++ {
			if weight.IsInf(dist[u], lim) {
				continue
			}
			edges, _ := g.Successors(u)
			for _, e := range edges {
				candidate := dist[u] + e.Weight
				if weight.Less(candidate, dist[e.To], lim) {
					dist[e.To] = candidate
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for u := 0; u < n; u++ {
		if weight.IsInf(dist[u], lim) {
			continue
		}
		edges, _ := g.Successors(u)
		for _, e := range edges {
			if weight.Less(dist[u]+e.Weight, dist[e.To], lim) {
				hasNegativeCycle = true
			}
		}
	}

	return dist, hasNegativeCycle
}
