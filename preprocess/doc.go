// Package preprocess reshapes a graph so that Fineman's pipeline can
// assume two structural invariants hold going in: every vertex with a
// negative outgoing edge has out-degree exactly one, and every vertex's
// in/out-degree is bounded by a threshold.
//
// Both transforms introduce fresh auxiliary vertices appended after the
// caller's original vertex range. The degree split connects them to
// their origin by zero-weight edges; the degree-one transform connects
// its origin by a single edge carrying the origin's minimum outgoing
// weight and lowers the moved edges by that same amount. Either way
// shortest-path distances on the original vertices are preserved
// exactly. Because original vertex ids
// never change — only new ids are appended — projecting a final
// distance vector back onto the caller's vertex set is simply slicing
// the first Projection.OriginalCount entries; Projection exists mainly
// to name that count and make the "auxiliary vertices are a transparent
// pass-through" contract explicit at call sites.
//
// Grounded on original_source/src/fineman/preprocessing.py for exact
// semantics (minimum-weight shift, degree-splitting via a work queue)
// and on dfs/topological.go's explicit-queue traversal style for the
// split queue's shape.
package preprocess
