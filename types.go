package fineman

import "github.com/gofineman/fineman/weight"

// Distance wraps a single vertex's result. Unreachable is set instead
// of overloading a sentinel +Inf value, since W may be an exact
// integer type with no infinity representation.
type Distance[W weight.Number] struct {
	Value       W
	Unreachable bool
}
