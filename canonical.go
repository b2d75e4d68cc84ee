package hclust

import "sort"

// rawMerge is an engine-order merge. Operand ids use the signed
// convention, with positive step numbers assigned in discovery order.
type rawMerge struct {
	a, b   ClusterID
	height float64
}

// canonicalize reorders raw merges into the external convention: merges
// sorted by ascending height (stable, so ties keep discovery order),
// positive ids remapped through the sort permutation's inverse, and each
// merge's operands ordered per the signed-id rule. Returns the canonical
// steps and the permutation, where perm[k] is the discovery index of
// canonical step k (reusable to reorder parallel per-merge metadata).
// Canonical input maps to itself.
func canonicalize(raw []rawMerge) ([]MergeStep, []int) {
	m := len(raw)
	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return raw[perm[i]].height < raw[perm[j]].height
	})

	// inv maps discovery step numbers to canonical ones (both 1-based).
	inv := make([]int, m+1)
	for k, old := range perm {
		inv[old+1] = k + 1
	}

	remap := func(c ClusterID) ClusterID {
		if c.IsLeaf() {
			return c
		}
		return Step(inv[c.StepNumber()])
	}

	steps := make([]MergeStep, m)
	for k, old := range perm {
		left, right := remap(raw[old].a), remap(raw[old].b)
		// The signed encoding collapses the operand rule to a single
		// comparison: leaves sort before aggregates, more negative leaf
		// first, smaller aggregate first.
		if left > right {
			left, right = right, left
		}
		steps[k] = MergeStep{Left: left, Right: right, Height: raw[old].height}
	}
	return steps, perm
}
