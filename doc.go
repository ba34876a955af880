// Package fineman computes single-source shortest-path distances on
// directed graphs with real-valued, possibly negative edge weights, under
// the guarantee that the graph contains no negative cycle reachable from
// the source — or reports that guarantee broken.
//
// It implements Fineman's near-linear-time algorithm: a price-function
// construction pipeline reweights the graph so every edge becomes
// non-negative, then an ordinary Dijkstra-style scan finishes the job.
// The pipeline is split across small, single-responsibility
// subpackages, each independently testable:
//
//	weight/       — generic numeric trait (int64 / float64 / fixed-point)
//	seed/         — injected, forkable randomness for the randomized stages
//	graph/        — graph primitives: adjacency, transpose, reweighting
//	bfd/          — bounded-hop shortest-path primitives (β-hop BFD)
//	preprocess/   — degree-one negative heads, bounded in/out-degree
//	betweenness/  — randomized betweenness reduction (price function D)
//	partition/    — heavy/light partition of a negative subset
//	independent/  — independent-set / crust extraction
//	eliminate/    — the outer elimination loop composing D and F
//	finalscan/    — final non-negative shortest-path scan
//
// This root package exposes the single public entry point, Fineman, and
// the error types a caller needs to branch on (NegativeCycle,
// ErrInvalidParameter, ErrExhaustion, ErrCancelled).
//
// Deliberately out of scope: synthetic graph generators, JSON loaders,
// plotting/benchmark harnesses, a CLI, all-pairs shortest paths, and
// persistence of any kind. Callers bring an already-built *graph.Graph
// and a source vertex; Fineman returns distances or a witnessed
// negative-cycle error.
package fineman
