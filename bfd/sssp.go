package bfd

import (
	"context"
	"fmt"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// BetaHopSSSP returns, for every vertex v, the minimum total weight of
// any src-to-v path using at most beta edges; v unreachable within that
// bound carries lim.PosInf. beta must be >= 1 and src
// must be a valid vertex id.
func BetaHopSSSP[W weight.Number](ctx context.Context, g *graph.Graph[W], src int, beta int, lim weight.Limits[W]) (map[int]W, error) {
	if beta < 1 {
		return nil, fmt.Errorf("%w: beta=%d", ErrInvalidParameter, beta)
	}
	if src < 0 || src >= g.NumVertices() {
		return nil, fmt.Errorf("%w: src=%d", ErrInvalidParameter, src)
	}

	res, err := boundedRelax(ctx, g, map[int]W{src: lim.Zero}, beta, lim, false)
	if err != nil {
		return nil, err
	}
	return res.dist, nil
}

// BetaHopSTSP is BetaHopSSSP's symmetric counterpart: it returns, for
// every vertex v, the minimum total weight of any v-to-tgt path using
// at most beta edges, computed by running BetaHopSSSP from tgt on the
// transposed graph.
func BetaHopSTSP[W weight.Number](ctx context.Context, g *graph.Graph[W], tgt int, beta int, lim weight.Limits[W]) (map[int]W, error) {
	if beta < 1 {
		return nil, fmt.Errorf("%w: beta=%d", ErrInvalidParameter, beta)
	}
	if tgt < 0 || tgt >= g.NumVertices() {
		return nil, fmt.Errorf("%w: tgt=%d", ErrInvalidParameter, tgt)
	}

	gt := graph.Transpose(g)
	return BetaHopSSSP(ctx, gt, tgt, beta, lim)
}
