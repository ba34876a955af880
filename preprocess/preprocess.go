package preprocess

import (
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// Preprocess returns a fresh graph satisfying both structural
// invariants — negative-out-degree-one and bounded in/out-degree —
// plus the recomputed negative-edge index and a Projection describing
// which of its vertices are original versus auxiliary. g is not
// mutated; Preprocess works on its own clone throughout.
func Preprocess[W weight.Number](g *graph.Graph[W], threshold int) (*graph.Graph[W], graph.EdgeSet[W], Projection, error) {
	proj := Projection{OriginalCount: g.NumVertices()}

	work := g.Clone()
	ensureNegativeHeadsDegreeOne(work)

	if err := ensureMaxOutDegree(work, threshold); err != nil {
		return nil, nil, Projection{}, err
	}

	transposed := graph.Transpose(work)
	if err := ensureMaxOutDegree(transposed, threshold); err != nil {
		return nil, nil, Projection{}, err
	}
	final := graph.Transpose(transposed)

	return final, graph.NegativeIndex(final), proj, nil
}
