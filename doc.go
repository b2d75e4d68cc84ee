// Package hclust implements agglomerative hierarchical clustering from a
// precomputed pairwise distance matrix, reproducing the merge order,
// height values, and pair-ordering conventions of the classical
// statistical reference implementation.
//
// Basic usage:
//
//	m, err := hclust.NewDistanceMatrix(dist)
//	d, err := hclust.Agglomerate(m, hclust.MethodAverage)
//	// d.Merges is the n-1 row merge table in ascending height order,
//	// d.Heights is the parallel height vector, d.Order the leaf
//	// display permutation.
//	parts := d.CutK(3) // flat partition with 3 clusters
//
// # Linkage methods
//
// Three engines cover the five methods. Single linkage uses Olson's
// O(n²) nearest-neighbor algorithm. Complete and average linkage, which
// have no cheap incremental distance-update rule, use a
// nearest-neighbor-chain algorithm over explicit member lists. Ward's
// criterion runs the Lance-Williams recurrence, in both published
// conventions: ward1 on raw distances, ward2 on squared distances with
// square-rooted heights.
//
// All engines emit merges in an internal discovery order; the public
// Dendrogram is canonical: merges sorted by ascending height, aggregate
// ids renumbered against that order, and each merge's operands ordered
// by the signed-id convention (leaves before aggregates, more negative
// leaf first, smaller aggregate first).
//
// The library is purely computational: no I/O, no goroutines, no shared
// mutable state. Each call owns its scratch buffers, so independent
// invocations are safe to run concurrently.
package hclust
