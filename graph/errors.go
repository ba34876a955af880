package graph

import "errors"

// Sentinel errors returned by the graph package. Callers branch on these
// with errors.Is; context is attached with fmt.Errorf("%w: ...") at the
// call site rather than baked into the sentinel message.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id
	// outside [0, NumVertices()).
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNilGraph indicates a nil *Graph was passed where a live graph
	// was required.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrEdgeNotFound indicates Weight was asked about a pair (u,v) with
	// no edge between them.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)
