package hclust

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// singleLink is Olson's O(n²) nearest-neighbor algorithm for single
// linkage. Each active slot caches a pointer to its nearest neighbor and
// the distance to it; every iteration merges the slot with the globally
// minimal cached distance (lowest slot index on ties) into its neighbor,
// min-folds the removed row into the surviving one (the single-linkage
// specialization of the Lance-Williams recurrence), and repairs the
// neighbor table in O(n).
//
// Raw merges come out in discovery order, which for single linkage is
// already ascending in height; canonicalization still owns id remapping
// and operand ordering.
func singleLink(m *DistanceMatrix) []rawMerge {
	n := m.Len()
	if n < 2 {
		return nil
	}

	// Working copy of the distance matrix. Slot k owns row and column k;
	// merged-away slots are recycled by moving the last active slot's
	// row and column into them.
	d := make([]float64, n*n)
	copy(d, m.data)

	id := make([]ClusterID, n)
	nn := make([]int, n)
	nnDist := make([]float64, n)
	for i := 0; i < n; i++ {
		id[i] = Leaf(i)
		nn[i], nnDist[i] = scanNearest(d, n, i, n)
	}

	raw := make([]rawMerge, 0, n-1)
	active := n

	for step := 1; step < n; step++ {
		// Globally closest pair: MinIdx takes the first minimum, which
		// is the required lowest-slot tie-break.
		i := floats.MinIdx(nnDist[:active])
		j := nn[i]
		raw = append(raw, rawMerge{a: id[i], b: id[j], height: nnDist[i]})

		// Merge into the lower slot, recycle the higher one.
		if j < i {
			i, j = j, i
		}
		id[i] = Step(step)

		// Min-fold row j into row i: the merged cluster is exactly as
		// close to k as the closer of its two parts.
		for k := 0; k < active; k++ {
			if k == i || k == j {
				continue
			}
			if djk := d[j*n+k]; djk < d[i*n+k] {
				d[i*n+k] = djk
				d[k*n+i] = djk
			}
		}

		// Pointers at the removed slot now find the merged cluster at i,
		// at an unchanged distance (single-link distances never grow).
		for k := 0; k < active; k++ {
			if k == i || k == j {
				continue
			}
			if nn[k] == j {
				nn[k] = i
			}
		}

		last := active - 1
		if j != last {
			copyRowCol(d, n, j, last)
			id[j], nn[j], nnDist[j] = id[last], nn[last], nnDist[last]
			for k := 0; k < last; k++ {
				if nn[k] == last {
					nn[k] = j
				}
			}
		}
		active--

		// The merged row may have moved closer to some k; refresh.
		for k := 0; k < active; k++ {
			if k == i {
				continue
			}
			if dik := d[i*n+k]; dik < nnDist[k] {
				nn[k], nnDist[k] = i, dik
			}
		}

		// Slot i's own neighbor set is stale; rescan.
		nn[i], nnDist[i] = scanNearest(d, n, i, active)
	}

	return raw
}

// scanNearest returns the nearest active neighbor of slot i in the flat
// n×n working matrix and the distance to it, taking the lowest slot
// index on ties. Returns (-1, +Inf) when i is the only active slot.
func scanNearest(d []float64, n, i, active int) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for k := 0; k < active; k++ {
		if k == i {
			continue
		}
		if dk := d[i*n+k]; dk < bestDist {
			best, bestDist = k, dk
		}
	}
	return best, bestDist
}

// copyRowCol overwrites slot dst's row and column of the flat n×n
// working matrix with slot src's, as part of last-slot recycling.
func copyRowCol(d []float64, n, dst, src int) {
	for k := 0; k < n; k++ {
		d[dst*n+k] = d[src*n+k]
		d[k*n+dst] = d[k*n+src]
	}
}
