// Package independent, given a negative vertex subset U, either
// produces a random independent set of the negative subgraph it
// induces, or — when the Heavy/Light partition exposes a high-reach
// pivot — a "crust" (a pivot vertex paired with the subset of U it
// reaches by a negative path). Both outcomes feed eliminate.Loop's
// price-function construction.
//
// Grounded on
// original_source/src/fineman/independent_set_or_crust.py and
// original_source/src/fineman/rand_is.py.
package independent
