package betweenness

import "github.com/gofineman/fineman/seed"

// Params bundles betweenness reduction's tuning constants: tau controls
// the pivot sample size, beta bounds the hop count of each pivot scan,
// and c is the oversampling constant (size = ceil(c*tau*log|V|)).
// Source drives the uniform-without-replacement pivot sample.
type Params struct {
	Tau    int
	Beta   int
	C      float64
	Source *seed.Source
}
