// Package graph defines the Graph, Edge, and EdgeSet types the rest of
// the Fineman pipeline operates on, plus the two structural transforms
// every stage composes with: Transpose and Reweight.
//
// Vertices are contiguous integers in [0, N). Edges are stored as an
// adjacency list indexed by source vertex id, generic over the module's
// weight.Number trait so the same Graph type serves int64, float64, and
// fixed-point decimal instantiations without process-wide configuration.
//
// Graph itself is a plain, mutable builder (AddVertex/AddEdge) used to
// assemble or grow a graph — preprocessing needs to introduce fresh
// auxiliary vertices, so mutation has to live somewhere. Every
// *transform* in this package (Transpose, Reweight) instead returns a
// fresh Graph and never mutates its input, so a caller holding a
// reference to the original graph never observes a transform's effects.
//
// Grounded on core/types.go and core/methods_edges.go (sentinel-error
// style, "never mutate the caller's graph" contract), generalized from
// string vertex ids and fixed int64 weights to this module's
// contiguous int ids and generic weight trait.
package graph
