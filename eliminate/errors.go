package eliminate

import "errors"

// ErrBudgetExhausted indicates Loop ran its configured MaxIterations
// without driving the negative-edge set to empty. This is expected to
// be vanishingly rare given the iteration count's high-probability
// bound; callers see it as a distinct sentinel from
// betweenness.ErrNegativeCycleDetected so they can tell "the randomized process got
// unlucky" apart from "the input actually has a negative cycle".
var ErrBudgetExhausted = errors.New("eliminate: iteration budget exhausted")
