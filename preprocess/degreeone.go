package preprocess

import (
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// ensureNegativeHeadsDegreeOne mutates g in place (g is assumed to
// already be a working copy owned by Preprocess, never the caller's
// graph) so that every vertex with at least one outgoing negative edge
// has out-degree exactly one.
//
// For such a vertex v with |G[v]| > 1: let m be the minimum weight
// among v's outgoing edges, introduce a fresh vertex v', set
// G[v] = {(v', m)}, and G[v'] = {(x, w(v,x) - m) : (x,w) in old G[v]}.
// Every shifted edge is non-negative because m was the minimum,
// preserving distances through v via the single new hop. Vertices
// already at out-degree <= 1, and vertices with no negative outgoing
// edge, are left untouched.
//
// Grounded on original_source/src/fineman/preprocessing.py's
// ensure_neg_vertices_has_degree_of_one.
func ensureNegativeHeadsDegreeOne[W weight.Number](g *graph.Graph[W]) {
	// Snapshot the vertex count before appending: newly introduced
	// vertices v' never themselves need splitting by this pass (their
	// single edge set was already shifted to be non-negative).
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		edges, _ := g.Successors(v)
		if len(edges) <= 1 {
			continue
		}

		hasNegative := false
		minWeight := edges[0].Weight
		for _, e := range edges {
			if e.Weight < 0 {
				hasNegative = true
			}
			if e.Weight < minWeight {
				minWeight = e.Weight
			}
		}
		if !hasNegative {
			continue
		}

		shifted := make([]graph.Edge[W], len(edges))
		for i, e := range edges {
			shifted[i] = graph.Edge[W]{To: e.To, Weight: e.Weight - minWeight}
		}

		aux := g.AddVertex()
		_ = g.SetSuccessors(aux, shifted)
		_ = g.SetSuccessors(v, []graph.Edge[W]{{To: aux, Weight: minWeight}})
	}
}
