package finalscan

import "github.com/gofineman/fineman/weight"

// NoPredecessor marks a vertex with no predecessor: the scan's source,
// or a vertex never reached.
const NoPredecessor = -1

// item represents a vertex and its current distance from the source,
// as stored in the priority queue; ordering is by dist ascending.
type item[W weight.Number] struct {
	id   int
	dist W
}

// pq is a min-heap of *item, ordered by dist. Lazy-decrease-key:
// relax pushes a fresh entry rather than mutating one in place, and
// process skips any popped entry whose vertex is already finalized.
type pq[W weight.Number] []*item[W]

func (q pq[W]) Len() int            { return len(q) }
func (q pq[W]) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq[W]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq[W]) Push(x interface{}) { *q = append(*q, x.(*item[W])) }
func (q *pq[W]) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
