package finalscan

import "errors"

// ErrVertexNotFound indicates the requested source vertex is outside
// the graph's id range.
var ErrVertexNotFound = errors.New("finalscan: vertex not found")

// ErrUnexpectedNegativeWeight indicates a negative edge weight reached
// Scan. This is an internal invariant violation: finalscan's caller
// (fineman.Fineman) only invokes it after the elimination loop has
// reweighted the graph to be non-negative everywhere.
var ErrUnexpectedNegativeWeight = errors.New("finalscan: unexpected negative weight")
