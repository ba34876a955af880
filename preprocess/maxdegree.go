package preprocess

import (
	"fmt"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// ensureMaxOutDegree mutates g in place so that no vertex has out-degree
// greater than threshold, by repeatedly splitting violators into two
// fresh children connected by zero-weight edges until none remain.
// Because the split edges are zero-weight, the split tree they form
// cannot introduce a cycle of negative sum — a zero-weight tree has no
// cycles at all.
//
// Grounded on original_source/src/fineman/preprocessing.py's
// ensure_max_degree (work-queue driven halving of the offending
// vertex's outgoing edge list) and dfs/topological.go's explicit-queue
// traversal idiom.
func ensureMaxOutDegree[W weight.Number](g *graph.Graph[W], threshold int) error {
	if threshold < 1 {
		return fmt.Errorf("%w: threshold=%d", ErrInvalidParameter, threshold)
	}

	queue := make([]int, 0)
	for v := 0; v < g.NumVertices(); v++ {
		edges, _ := g.Successors(v)
		if len(edges) > threshold {
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		edges, _ := g.Successors(v)
		if len(edges) <= threshold {
			continue // may have been resolved already if v was queued twice
		}

		mid := (len(edges) + 1) / 2
		left := append([]graph.Edge[W](nil), edges[:mid]...)
		right := append([]graph.Edge[W](nil), edges[mid:]...)

		child1 := g.AddVertex()
		child2 := g.AddVertex()
		_ = g.SetSuccessors(child1, left)
		_ = g.SetSuccessors(child2, right)
		_ = g.SetSuccessors(v, []graph.Edge[W]{
			{To: child1, Weight: 0},
			{To: child2, Weight: 0},
		})

		if len(left) > threshold {
			queue = append(queue, child1)
		}
		if len(right) > threshold {
			queue = append(queue, child2)
		}
	}

	return nil
}
