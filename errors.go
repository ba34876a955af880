package fineman

import (
	"errors"

	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// Sentinel errors returned by Fineman.
var (
	// ErrInvalidParameter indicates an out-of-range tau, beta, c, or
	// degree threshold, or a source vertex outside [0,|V|). Raised
	// eagerly at the boundary, before any graph work begins.
	ErrInvalidParameter = errors.New("fineman: invalid parameter")

	// ErrExhaustion indicates a randomized subroutine (independent-set
	// or crust extraction) exceeded its retry budget. Callers may retry
	// Fineman with a fresh seed Option.
	ErrExhaustion = errors.New("fineman: randomized retry budget exhausted")

	// ErrCancelled indicates the supplied context was cancelled between
	// relaxation rounds.
	ErrCancelled = errors.New("fineman: cancelled")
)

// NegativeCycle reports a negative-weight cycle reachable from the
// source. Fatal: no distances are returned alongside it.
//
// Witness carries the ordered vertex list of the detected cycle when
// the detecting scan could extract one by walking predecessor chains;
// it is nil when the cycle was detected inside an internal auxiliary
// structure before projection back onto the caller's vertex set (see
// betweenness's auxiliary graph H). Fineman never populates Edge: it is
// always nil, so a NegativeCycle without a Witness names no triggering
// edge either.
type NegativeCycle[W weight.Number] struct {
	Witness []int
	Edge    *graph.Edge[W]
}

// Error satisfies the error interface. NegativeCycle is returned as a
// value (not wrapped), so callers can use a type switch or
// errors.As to recover the witness.
func (c *NegativeCycle[W]) Error() string {
	if len(c.Witness) > 0 {
		return "fineman: negative cycle detected"
	}
	return "fineman: negative cycle detected (no witness extracted)"
}
