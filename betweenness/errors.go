package betweenness

import "errors"

// ErrInvalidParameter indicates tau, beta, or c fell outside their
// required bounds (1<=tau<=|V|, beta>=1, c>1).
var ErrInvalidParameter = errors.New("betweenness: invalid parameter")

// ErrNegativeCycleDetected indicates the super-source BFD over the
// auxiliary graph H still found an improving distance after its
// detection round — H itself contains a negative cycle, so no price
// function can be derived from this round. eliminate.Loop returns it
// wrapped, and fineman.Fineman reports it to its caller as a fatal
// NegativeCycle without a witness.
var ErrNegativeCycleDetected = errors.New("betweenness: negative cycle in auxiliary graph")
