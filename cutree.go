package hclust

// CutOptions bounds how far Cut executes merges. Both bounds are
// honored together: a merge runs only while the partition count is still
// above K and the merge height does not exceed H.
type CutOptions struct {
	// K is the target cluster count. Values below 1 behave as 1; values
	// of n or more leave every observation in its own cluster.
	K int

	// H is the height threshold: merges above it are not executed.
	H float64
}

// DefaultCutOptions returns the reference defaults for d: one cluster,
// threshold at the maximum merge height.
func DefaultCutOptions(d *Dendrogram) CutOptions {
	h := 0.0
	if len(d.Heights) > 0 {
		h = d.Heights[len(d.Heights)-1]
	}
	return CutOptions{K: 1, H: h}
}

// CutK cuts the tree into k flat clusters.
func (d *Dendrogram) CutK(k int) []int {
	opts := DefaultCutOptions(d)
	opts.K = k
	return d.Cut(opts)
}

// CutH cuts the tree at height h: every merge at or below h is executed.
func (d *Dendrogram) CutH(h float64) []int {
	opts := DefaultCutOptions(d)
	opts.H = h
	return d.Cut(opts)
}

// Cut derives a flat partition by walking the merges in their (already
// ascending) height order and executing each one while both bounds
// still hold; both are re-checked on every merge, so thresholds falling
// between merge heights behave correctly. Observations untouched by an
// executed merge remain their own partition.
//
// The result maps each observation to a partition id in 1..count.
// Partitions born from executed merges are numbered first, in merge
// order, then untouched observations in index order; this numbering is
// the reference convention and must not change.
func (d *Dendrogram) Cut(opts CutOptions) []int {
	n := d.n
	k := opts.K
	if k < 1 {
		k = 1
	}

	uf := newUnionFind(n)
	executed := make([]bool, len(d.Merges))
	done := 0
	for s, step := range d.Merges {
		if n-done <= k || step.Height > opts.H {
			continue
		}
		stepNode := uf.node(Step(s + 1))
		uf.link(step.Left, stepNode)
		uf.link(step.Right, stepNode)
		executed[s] = true
		done++
	}

	assigned := make(map[int]int, n-done)
	next := 1
	for s := range d.Merges {
		if !executed[s] {
			continue
		}
		root := uf.find(uf.node(Step(s + 1)))
		if _, ok := assigned[root]; !ok {
			assigned[root] = next
			next++
		}
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		root := uf.find(i)
		pid, ok := assigned[root]
		if !ok {
			pid = next
			next++
			assigned[root] = pid
		}
		out[i] = pid
	}
	return out
}
