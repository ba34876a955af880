// Package bfd implements the bounded-hop Bellman-Ford-style relaxation
// primitives every other stage of the Fineman pipeline is built from:
// β-hop SSSP, β-hop STSP, a super-source scan with negative-cycle
// detection, and a multi-source subset scan.
//
// All four share one relaxation core (relax.go): seed a distance map,
// run up to a fixed number of rounds iterating vertices in ascending id
// order and each vertex's outgoing edges in insertion order, for
// deterministic, reproducible results,
// and optionally run one extra round to detect whether any distance
// still improves — the signature of an unreachable-within-bound
// negative cycle.
//
// Only SuperSourceBFD is authorized to report a negative cycle; the
// bounded-hop scans BetaHopSSSP, BetaHopSTSP, and SubsetBFD never run
// the extra detection round.
//
// Grounded on the bounded-rounds relaxation loops of
// other_examples/adc6a654_lexkrstn-go-graph__bellman_ford.go.go and
// other_examples/45c19c96_soniakeys-graph__bellmanford.go.go, and on
// gonum-graph/path/path.go's BellmanFord/Johnson pair for the
// super-source-plus-reweight idiom.
package bfd
