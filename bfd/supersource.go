package bfd

import (
	"context"
	"fmt"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// SuperSourceBFD runs a virtual source connected by zero-weight edges
// to every vertex (modeled implicitly by seeding every vertex at
// lim.Zero, rather than materializing an extra vertex and edges), for
// rounds relaxation passes, then — when cycleDetect is true — one more
// round to check whether any distance still improves.
//
// It returns the resulting potentials (the price function callers
// reweight by), the predecessor map (for witness-cycle reconstruction),
// and a CycleSignal. SuperSourceBFD is the only bounded-hop scan
// authorized to report a negative cycle; betweenness and the root
// fineman package's final witness check both rely on it rather than
// inventing their own detection pass.
func SuperSourceBFD[W weight.Number](ctx context.Context, g *graph.Graph[W], rounds int, lim weight.Limits[W], cycleDetect bool) (potentials map[int]W, parent map[int]int, signal CycleSignal, err error) {
	n := g.NumVertices()
	seeds := make(map[int]W, n)
	for v := 0; v < n; v++ {
		seeds[v] = lim.Zero
	}

	res, err := boundedRelax(ctx, g, seeds, rounds, lim, cycleDetect)
	if err != nil {
		return nil, nil, CycleSignal{}, fmt.Errorf("bfd: SuperSourceBFD: %w", err)
	}
	return res.dist, res.parent, res.signal, nil
}
