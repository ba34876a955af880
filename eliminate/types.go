package eliminate

import (
	"github.com/gofineman/fineman/seed"
)

// Params bundles the constants Loop threads through every iteration's
// calls to betweenness.Reduce and independent.FindISOrCrust.
// MaxIterations caps the outer loop; if zero, Loop derives a default
// from the expected O(|N|^(1/3)*polylog|V|) iteration bound.
type Params struct {
	Tau           int
	Beta          int
	C             float64
	CPrime        float64
	MaxIterations int
	Source        *seed.Source
}
