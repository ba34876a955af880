package betweenness

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/gofineman/fineman/bfd"
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// Reduce samples a pivot set T, computes each pivot's β-hop out- and
// in-distance tables, assembles the auxiliary graph H, and runs a
// cycle-detecting super-source BFD over H. The restriction of H's
// resulting potentials to V is the price function a caller reweights G
// by.
//
// Resolves original_source's `distances[t][2][v]` read (a three-tuple
// index into a stored pair): the pivot-to-vertex
// edge t->v carries the β-hop SSSP distance (how far a path leaving t
// reaches v), and the vertex-to-pivot edge v->t carries the β-hop STSP
// distance (how far a path arriving from v reaches t) — the "in"
// distance table, exactly the quantity that stray index was reaching
// for.
func Reduce[W weight.Number](ctx context.Context, g *graph.Graph[W], lim weight.Limits[W], p Params) (map[int]W, error) {
	n := g.NumVertices()
	if p.Beta < 1 || p.Tau < 1 || p.Tau > n || p.C <= 1 {
		return nil, fmt.Errorf("%w: tau=%d beta=%d c=%g", ErrInvalidParameter, p.Tau, p.Beta, p.C)
	}

	sampleSize := int(math.Ceil(p.C * float64(p.Tau) * math.Log(float64(n))))
	if sampleSize > n {
		sampleSize = n
	}
	if sampleSize < 1 {
		sampleSize = 1
	}
	perm := p.Source.Rand().Perm(n)
	pivots := perm[:sampleSize]

	h := graph.New[W](n)
	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, len(pivots))

	for _, t := range pivots {
		t := t
		wg.Add(1)
		go func() {
			defer wg.Done()

			dOut, err := bfd.BetaHopSSSP(ctx, g, t, p.Beta, lim)
			if err != nil {
				errCh <- err
				return
			}
			dIn, err := bfd.BetaHopSTSP(ctx, g, t, p.Beta, lim)
			if err != nil {
				errCh <- err
				return
			}

			mu.Lock()
			for v := 0; v < n; v++ {
				if !weight.IsInf(dOut[v], lim) {
					_ = h.AddEdge(t, v, dOut[v])
				}
				if !weight.IsInf(dIn[v], lim) {
					_ = h.AddEdge(v, t, dIn[v])
				}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	rounds := 2 * len(pivots)
	potentials, _, signal, err := bfd.SuperSourceBFD(ctx, h, rounds, lim, true)
	if err != nil {
		return nil, fmt.Errorf("betweenness: %w", err)
	}
	if signal.Detected {
		return nil, fmt.Errorf("%w: vertex %d", ErrNegativeCycleDetected, signal.Vertex)
	}

	return potentials, nil
}
