package bfd

import (
	"context"
	"fmt"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// relaxResult bundles the three outputs every flavor of bounded-hop BFD
// produces: distances, predecessors (for later path/witness
// reconstruction), and — only when the caller asked for the extra
// detection round — whether a distance still improved past the round
// budget.
type relaxResult[W weight.Number] struct {
	dist    map[int]W
	parent  map[int]int
	signal  CycleSignal
}

// boundedRelax is the single relaxation core shared by BetaHopSSSP,
// BetaHopSTSP, SuperSourceBFD, and SubsetBFD. seeds gives the initial
// distance for each source vertex (0 for every flavor here, since all
// four are "distance from the nearest seed" computations); every other
// vertex starts at lim.PosInf.
//
// It runs at most rounds relaxation passes, stopping early once a pass
// changes nothing. Each pass iterates vertices 0..n-1 and their outgoing
// edges in insertion order and reads the distances as they stood when
// the pass began, so after k passes every distance is the minimum over
// paths of at most k edges, and two runs over the same graph always
// produce the same result. Ties are broken by
// keeping the smaller predecessor id, which matters only for
// witness/path reconstruction, never for the distance values
// themselves.
//
// If detectExtra is true, one additional round runs after the budget;
// if it still improves some vertex's distance, signal.Detected is true
// and signal.Vertex names the smallest such vertex id (kept
// deterministic by scanning 0..n-1 in order and taking the first hit).
//
// ctx is checked once per outer round (including the extra one); on
// cancellation boundedRelax returns immediately with ErrCancelled and
// leaves no caller-visible state mutated (the caller discards its own
// half-built maps).
func boundedRelax[W weight.Number](
	ctx context.Context,
	g *graph.Graph[W],
	seeds map[int]W,
	rounds int,
	lim weight.Limits[W],
	detectExtra bool,
) (relaxResult[W], error) {
	if rounds < 0 {
		return relaxResult[W]{}, fmt.Errorf("%w: rounds=%d", ErrInvalidParameter, rounds)
	}

	n := g.NumVertices()
	dist := make(map[int]W, n)
	parent := make(map[int]int, n)
	for v := 0; v < n; v++ {
		dist[v] = lim.PosInf
		parent[v] = NoPredecessor
	}
	for v, d := range seeds {
		dist[v] = d
	}

	relaxOnce := func() bool {
		// Read from the distances as they stood when the pass began, so
		// one pass extends paths by at most one edge.
		prev := make(map[int]W, n)
		for v, d := range dist {
			prev[v] = d
		}
		changed := false
		for u := 0; u < n; u++ {
			if weight.IsInf(prev[u], lim) {
				continue
			}
			edges, err := g.Successors(u)
			if err != nil {
				// u is always in range here; kept defensive only.
				continue
			}
			du := prev[u]
			for _, e := range edges {
				candidate := du + e.Weight
				v := e.To
				if weight.Less(candidate, dist[v], lim) {
					dist[v] = candidate
					parent[v] = u
					changed = true
				} else if !weight.Less(dist[v], candidate, lim) && u < parent[v] {
					// exact tie: keep the smaller predecessor id for a
					// stable, reproducible witness. Does not count as a
					// distance change.
					parent[v] = u
				}
			}
		}
		return changed
	}

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return relaxResult[W]{}, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		if !relaxOnce() {
			break // fixed point reached; further rounds are no-ops
		}
	}

	signal := CycleSignal{Vertex: NoPredecessor}
	if detectExtra {
		if err := ctx.Err(); err != nil {
			return relaxResult[W]{}, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		before := make(map[int]W, n)
		for v, d := range dist {
			before[v] = d
		}
		relaxOnce()
		for v := 0; v < n; v++ {
			if weight.Less(dist[v], before[v], lim) {
				signal = CycleSignal{Detected: true, Vertex: v}
				break
			}
		}
	}

	return relaxResult[W]{dist: dist, parent: parent, signal: signal}, nil
}
