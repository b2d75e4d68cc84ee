package hclust

import "math"

// linkageFunc computes the dissimilarity between two clusters given as
// leaf-index lists. Implementations must be symmetric and may read only
// the original distance matrix: the value depends on current membership,
// never on merge history.
type linkageFunc func(m *DistanceMatrix, a, b []int) float64

// completeLinkage is the maximum pairwise distance across the two
// member lists.
func completeLinkage(m *DistanceMatrix, a, b []int) float64 {
	best := math.Inf(-1)
	for _, i := range a {
		for _, j := range b {
			if d := m.At(i, j); d > best {
				best = d
			}
		}
	}
	return best
}

// averageLinkage (UPGMA) is the mean pairwise distance across the two
// member lists.
func averageLinkage(m *DistanceMatrix, a, b []int) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			sum += m.At(i, j)
		}
	}
	return sum / float64(len(a)*len(b))
}

// chainLink is the nearest-neighbor-chain algorithm for linkage criteria
// without a cheap incremental update rule. It grows a chain in which
// each cluster is the nearest neighbor of its predecessor; link
// distances strictly decrease along the chain, so a reciprocal
// nearest-neighbor pair must appear, and such a pair is always safe to
// merge. After a merge the chain is truncated by three (the reciprocal
// pair plus the element whose nearest neighbor may now be the merged
// cluster), bounding total chain work to amortized O(n) per merge.
//
// Discovery order is not ascending in height; canonicalization restores
// the external convention.
func chainLink(m *DistanceMatrix, linkage linkageFunc) []rawMerge {
	n := m.Len()
	if n < 2 {
		return nil
	}

	id := make([]ClusterID, n)
	members := make([][]int, n)
	for i := 0; i < n; i++ {
		id[i] = Leaf(i)
		members[i] = []int{i}
	}

	raw := make([]rawMerge, 0, n-1)
	chain := make([]int, 0, n)
	active := n

	for step := 1; step < n; step++ {
		if len(chain) == 0 {
			chain = append(chain, 0)
		}

		// Grow the chain until the tail and its predecessor are
		// reciprocal nearest neighbors.
		var prev, tail int
		var height float64
		for {
			tail = chain[len(chain)-1]
			prev = -1
			if len(chain) > 1 {
				prev = chain[len(chain)-2]
			}

			// Nearest active neighbor of the tail: lowest slot index on
			// ties, except that a tie with the predecessor closes the
			// chain (the pair is reciprocal).
			best, bestDist := -1, math.Inf(1)
			dPrev := math.Inf(1)
			for k := 0; k < active; k++ {
				if k == tail {
					continue
				}
				dk := linkage(m, members[tail], members[k])
				if k == prev {
					dPrev = dk
				}
				if dk < bestDist {
					best, bestDist = k, dk
				}
			}
			if prev >= 0 && dPrev == bestDist {
				height = bestDist
				break
			}
			chain = append(chain, best)
		}

		a, b := prev, tail
		raw = append(raw, rawMerge{a: id[a], b: id[b], height: height})
		if b < a {
			a, b = b, a
		}
		id[a] = Step(step)
		members[a] = append(members[a], members[b]...)

		// Backtrack past the merged pair; restart if too little remains.
		chain = chain[:max(len(chain)-3, 0)]

		last := active - 1
		if b != last {
			id[b], members[b] = id[last], members[last]
			for ci, c := range chain {
				if c == last {
					chain[ci] = b
				}
			}
		}
		members[last] = nil
		active--
	}

	return raw
}
