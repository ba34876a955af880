package fineman

import (
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// restrictToReachable computes the subgraph of g reachable from source
// by a plain directed walk (ignoring edge weight sign entirely — this
// is reachability in the combinatorial sense, not "reachable by a
// shortest path"), and relabels it to a dense id range with source at
// id 0.
//
// This mirrors the standard Bellman-Ford/Johnson idiom of restricting a
// negative-weight scan to the component reachable from the query
// source before running it, so that a negative cycle elsewhere in the
// graph — one the source can never actually reach — is never reported
// as fatal. Grounded on BellmanFord.Start's "finds shortest paths from
// start to all nodes reachable from start" contract and its "returns
// false... in case it encounters a negative cycle reachable from
// start" caveat.
//
// Returns the restricted graph, and toOriginal, a slice mapping the
// restricted graph's vertex ids back to g's original ids (toOriginal[0]
// is always source).
func restrictToReachable[W weight.Number](g *graph.Graph[W], source int) (*graph.Graph[W], []int) {
	n := g.NumVertices()
	visited := make([]bool, n)
	order := []int{source}
	visited[source] = true

	for i := 0; i < len(order); i++ {
		u := order[i]
		edges, _ := g.Successors(u)
		for _, e := range edges {
			if !visited[e.To] {
				visited[e.To] = true
				order = append(order, e.To)
			}
		}
	}

	newID := make(map[int]int, len(order))
	for i, v := range order {
		newID[v] = i
	}

	out := graph.New[W](len(order))
	for i, v := range order {
		edges, _ := g.Successors(v)
		for _, e := range edges {
			if j, ok := newID[e.To]; ok {
				_ = out.AddEdge(i, j, e.Weight)
			}
		}
	}

	return out, order
}
