package bfd

// NoPredecessor marks a vertex with no predecessor yet: it is the
// relaxation source itself, or it has not been reached. Parent maps
// returned by this package use NoPredecessor rather than a zero value,
// since 0 is itself a valid vertex id.
const NoPredecessor = -1

// CycleSignal reports whether SuperSourceBFD's extra detection round
// found a still-improving distance, and if so at which vertex — the
// starting point for a predecessor-chain walk back to a witness cycle
// (done by the fineman package, not here, keeping cycle extraction out
// of the bounded-hop scans' own responsibility).
type CycleSignal struct {
	Detected bool
	Vertex   int // NoPredecessor if !Detected
}
