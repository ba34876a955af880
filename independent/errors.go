package independent

import "errors"

// ErrExhaustion indicates FindISOrCrust exceeded its retry budget
// without producing a large-enough independent set or crust. The
// original Python reseeds from a wall-clock tick and restarts
// unboundedly; this bounds the retries instead, at ceil(log2|V|)^2
// attempts.
var ErrExhaustion = errors.New("independent: retry budget exhausted")
