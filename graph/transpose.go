package graph

import "github.com/gofineman/fineman/weight"

// Transpose returns G^T: a fresh graph with the same vertex set and
// every edge reversed, weight unchanged. g is not mutated.
//
// This builds the transpose eagerly rather than computing predecessors
// lazily per call, since preprocess.Preprocess needs it materialized
// twice (once to transpose in before bounding in-degree, once to
// transpose back out).
func Transpose[W weight.Number](g *Graph[W]) *Graph[W] {
	out := New[W](g.NumVertices())
	for u, edges := range g.adj {
		for _, e := range edges {
			// Ignoring the error: u and e.To are both drawn from a
			// valid g, so they are always in range for out, which has
			// the same vertex count.
			_ = out.AddEdge(e.To, u, e.Weight)
		}
	}
	return out
}
