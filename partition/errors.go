package partition

import "errors"

// ErrInvalidParameter indicates rho fell outside [1, |U|] or the
// resulting sample probability rho/|U| left [0,1].
var ErrInvalidParameter = errors.New("partition: invalid parameter")
