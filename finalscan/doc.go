// Package finalscan implements a standard non-negative-weight
// single-source shortest-path scan, run once the elimination loop has
// reweighted every edge to be non-negative.
//
// Grounded on a container/heap lazy-decrease-key Dijkstra runner,
// generalized from string
// vertex ids and int64 weights to int ids and weight.Number. The
// upfront negative-weight pre-scan that package uses to fail fast is
// replaced here by an internal invariant — finalscan's only caller
// reweights the graph to non-negative beforehand, so a negative edge
// reaching this package indicates a bug upstream, not a usage error.
package finalscan
