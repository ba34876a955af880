// Package partition performs repeated randomized sampling of a
// negative vertex subset to split it into Heavy (vertices
// hit often enough by a negative path from a small random sample to be
// worth exposing via a pivot) and Light (the remainder, sparse enough
// for a random independent set to succeed against).
//
// Grounded on
// original_source/src/fineman/heavy_light_partition.py.
package partition
