// Package eliminate implements the outer loop that repeatedly runs
// betweenness reduction and independent-set/crust extraction,
// accumulating a price function and reweighting after each stage,
// until the negative-edge set empties or an iteration budget is
// exhausted.
//
// Grounded on the call shapes betweenness_reduction.py and
// independent_set_or_crust.py expose; the original driver module
// itself (src/fineman/finemans_algorithm.py, referenced by
// src/tests/test_finemans_algorithm.py) was not retrieved alongside
// them.
package eliminate
