package bfd

import (
	"context"
	"fmt"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// SubsetBFD seeds every vertex in sources at distance lim.Zero and runs
// rounds relaxation passes, returning each vertex's distance from the
// nearest source. If rounds <= 0, it defaults to |V| rounds. Used by
// partition.HeavyLight and independent.RandIS to test "reach with a
// negative path" from a random sample; cycle detection is reserved to
// SuperSourceBFD.
//
// returnParents controls whether the predecessor map is populated;
// callers that only need "is v reachable by a negative path" (most
// uses in this module) can skip it.
func SubsetBFD[W weight.Number](ctx context.Context, g *graph.Graph[W], sources []int, rounds int, lim weight.Limits[W], returnParents bool) (dist map[int]W, parent map[int]int, err error) {
	n := g.NumVertices()
	if rounds <= 0 {
		rounds = n
	}
	seeds := make(map[int]W, len(sources))
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, nil, fmt.Errorf("%w: source=%d", ErrInvalidParameter, s)
		}
		seeds[s] = lim.Zero
	}

	res, err := boundedRelax(ctx, g, seeds, rounds, lim, false)
	if err != nil {
		return nil, nil, fmt.Errorf("bfd: SubsetBFD: %w", err)
	}
	if !returnParents {
		return res.dist, nil, nil
	}
	return res.dist, res.parent, nil
}
