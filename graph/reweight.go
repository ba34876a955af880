package graph

import "github.com/gofineman/fineman/weight"

// Reweight applies a price function phi to g and returns a fresh graph
// G' with w'(u,v) = w(u,v) + phi(u) - phi(v), plus the recomputed
// negative-edge index N' for G'. g is not mutated.
//
// Vertices with no entry in phi are treated as phi(v) == 0 — this lets
// callers pass a partial price function (e.g. one defined only over the
// original vertex set, applied to a graph that also carries
// preprocessing's auxiliary vertices) without having to materialize a
// dense map first.
//
// Reweighting preserves shortest paths: this is a pure per-edge
// transform and performs no path search itself.
func Reweight[W weight.Number](g *Graph[W], phi map[int]W) (*Graph[W], EdgeSet[W]) {
	out := New[W](g.NumVertices())
	for u, edges := range g.adj {
		pu := phi[u]
		for _, e := range edges {
			pv := phi[e.To]
			_ = out.AddEdge(u, e.To, e.Weight+pu-pv)
		}
	}
	return out, NegativeIndex(out)
}

// Compose returns the pointwise sum of two price functions, phi = a + b:
// composition of price functions is pointwise addition. Vertices
// present in only one of a or b are treated as 0
// in the other.
func Compose[W weight.Number](a, b map[int]W) map[int]W {
	out := make(map[int]W, len(a)+len(b))
	for v, p := range a {
		out[v] = p
	}
	for v, p := range b {
		out[v] += p
	}
	return out
}
