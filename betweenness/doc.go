// Package betweenness implements a randomized reweighting step that
// samples a small pivot set T, builds an
// auxiliary graph H connecting every pivot to every vertex (and back)
// by bounded-hop distances, and runs a super-source bounded-hop scan
// over H to derive a price function. Reweighting G by that price
// function drops, with high probability, the number of vertex pairs
// whose β-hop negative betweenness is "heavy".
//
// Grounded on original_source/src/fineman/betweenness_reduction.py.
package betweenness
