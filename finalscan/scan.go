package finalscan

import (
	"container/heap"
	"fmt"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// Scan runs Dijkstra's algorithm from source over g, which must already
// be non-negative everywhere. It returns the distance to
// every vertex (lim.PosInf for unreachable ones) and, when
// returnPath is true, a predecessor map for path reconstruction.
func Scan[W weight.Number](g *graph.Graph[W], source int, lim weight.Limits[W], returnPath bool) (dist map[int]W, prev map[int]int, err error) {
	n := g.NumVertices()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source=%d", ErrVertexNotFound, source)
	}

	dist = make(map[int]W, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = lim.PosInf
	}
	dist[source] = lim.Zero

	if returnPath {
		prev = make(map[int]int, n)
		for v := 0; v < n; v++ {
			prev[v] = NoPredecessor
		}
	}

	q := make(pq[W], 0, n)
	heap.Init(&q)
	heap.Push(&q, &item[W]{id: source, dist: lim.Zero})

	for q.Len() > 0 {
		it := heap.Pop(&q).(*item[W])
		u := it.id

		if visited[u] {
			continue
		}
		visited[u] = true

		edges, edgeErr := g.Successors(u)
		if edgeErr != nil {
			continue
		}
		du := dist[u]
		for _, e := range edges {
			if e.Weight < lim.Zero {
				return nil, nil, fmt.Errorf("%w: edge %d->%d weight=%v", ErrUnexpectedNegativeWeight, u, e.To, e.Weight)
			}
			v := e.To
			if visited[v] {
				continue
			}
			candidate := du + e.Weight
			if weight.Less(candidate, dist[v], lim) {
				dist[v] = candidate
				if prev != nil {
					prev[v] = u
				}
				heap.Push(&q, &item[W]{id: v, dist: candidate})
			}
		}
	}

	return dist, prev, nil
}
