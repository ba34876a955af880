package bfd

import (
	"context"
	"testing"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

func buildChain(n int) *graph.Graph[int64] {
	g := graph.New[int64](n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1, int64(i%7-3))
	}
	return g
}

func BenchmarkBetaHopSSSP(b *testing.B) {
	g := buildChain(2000)
	lim := weight.IntLimits()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = BetaHopSSSP(ctx, g, 0, 64, lim)
	}
}

func BenchmarkSuperSourceBFD(b *testing.B) {
	g := buildChain(2000)
	lim := weight.IntLimits()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = SuperSourceBFD(ctx, g, g.NumVertices(), lim, false)
	}
}
