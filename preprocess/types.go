package preprocess

// Projection records how many of the transformed graph's vertices are
// original (ids [0, OriginalCount)) versus auxiliary (ids
// [OriginalCount, N)), so a caller can project a distance vector back
// onto the vertex set it started with without ever learning an
// auxiliary id.
type Projection struct {
	OriginalCount int
}

// IsAuxiliary reports whether v was introduced by preprocessing rather
// than present in the caller's original graph.
func (p Projection) IsAuxiliary(v int) bool {
	return v >= p.OriginalCount
}
