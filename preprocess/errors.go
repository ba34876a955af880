package preprocess

import "errors"

// ErrInvalidParameter indicates a non-positive degree threshold was
// passed to ensureMaxOutDegree or Preprocess.
var ErrInvalidParameter = errors.New("preprocess: invalid parameter")
