package hclust

import (
	"fmt"
	"strconv"
	"strings"
)

// ClusterID identifies a node of the merge tree using the signed
// convention of the reference implementation: negative values denote
// original observations (Leaf(i) == -(i+1) for 0-based i), positive
// values denote aggregates created by merge steps (Step(j) == j, steps
// numbered from 1 in merge-table order).
type ClusterID int

// Leaf returns the id of observation i (0-based).
func Leaf(i int) ClusterID { return ClusterID(-(i + 1)) }

// Step returns the id of the cluster created by merge step j (1-based).
func Step(j int) ClusterID { return ClusterID(j) }

// IsLeaf reports whether c denotes an original observation.
func (c ClusterID) IsLeaf() bool { return c < 0 }

// LeafIndex returns the 0-based observation index. Valid only when
// IsLeaf is true.
func (c ClusterID) LeafIndex() int { return int(-c) - 1 }

// StepNumber returns the 1-based merge step that created c. Valid only
// when IsLeaf is false.
func (c ClusterID) StepNumber() int { return int(c) }

// MergeStep is one row of the merge table. Left and Right follow the
// canonical operand ordering: for two leaves the more negative id comes
// first, a leaf always precedes an aggregate, and for two aggregates the
// smaller step number comes first.
type MergeStep struct {
	Left   ClusterID
	Right  ClusterID
	Height float64
}

// Dendrogram is the immutable result of Agglomerate. For n observations
// it holds exactly n-1 merge steps in ascending height order; every
// positive id 1..n-1 is created exactly once and consumed by exactly one
// later step, except the final id, which is the root.
type Dendrogram struct {
	// Merges is the n-1 row merge table in ascending height order.
	Merges []MergeStep

	// Heights parallels Merges: Heights[i] == Merges[i].Height.
	Heights []float64

	// Order is the leaf display order, a permutation of 0..n-1 placing
	// observations so that dendrogram branches never cross.
	Order []int

	// Labels holds one label per observation, "1".."n" unless replaced
	// by the caller.
	Labels []string

	// Method is the linkage criterion the tree was built with.
	Method Method

	n int
}

// Len returns the number of observations.
func (d *Dendrogram) Len() int { return d.n }

// newDendrogram assembles the result from canonical merge steps: the
// parallel height vector, the leaf display order, and default labels.
func newDendrogram(steps []MergeStep, n int, method Method) *Dendrogram {
	heights := make([]float64, len(steps))
	for i, s := range steps {
		heights[i] = s.Height
	}

	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}

	return &Dendrogram{
		Merges:  steps,
		Heights: heights,
		Order:   leafOrder(steps, n),
		Labels:  labels,
		Method:  method,
		n:       n,
	}
}

// leafOrder computes the display permutation bottom-up in increasing
// merge-step order: each step contributes the leaf sequence of its left
// operand followed by that of its right operand, where a leaf operand is
// a singleton and an aggregate operand is the sequence of the step that
// created it. The final step's sequence is the dendrogram order.
func leafOrder(steps []MergeStep, n int) []int {
	if len(steps) == 0 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		return order
	}

	// orders[j-1] is the leaf sequence of the cluster created at step j.
	orders := make([][]int, len(steps))
	side := func(c ClusterID) []int {
		if c.IsLeaf() {
			return []int{c.LeafIndex()}
		}
		return orders[c.StepNumber()-1]
	}
	for i, s := range steps {
		left, right := side(s.Left), side(s.Right)
		seq := make([]int, 0, len(left)+len(right))
		seq = append(seq, left...)
		seq = append(seq, right...)
		orders[i] = seq
	}
	return orders[len(steps)-1]
}

// String renders the merge table for debugging, one step per line.
func (d *Dendrogram) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "hclust dendrogram (%s, n=%d)\n", d.Method, d.n)
	for i, s := range d.Merges {
		fmt.Fprintf(&b, "%4d: %6d %6d  %g\n", i+1, s.Left, s.Right, s.Height)
	}
	return b.String()
}
