package hclust

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// wardLink runs the Lance-Williams recurrence for Ward's criterion over
// a working copy of the distance matrix, with per-cluster size counters
// and a cached nearest-neighbor pointer per active slot. squared selects
// the ward2 convention: cluster on squared distances and square-root the
// final heights; ward1 runs on the raw distances as given.
func wardLink(m *DistanceMatrix, squared bool) []rawMerge {
	n := m.Len()
	if n < 2 {
		return nil
	}

	d := make([]float64, n*n)
	copy(d, m.data)
	if squared {
		for i := range d {
			d[i] *= d[i]
		}
	}

	id := make([]ClusterID, n)
	size := make([]int, n)
	nn := make([]int, n)
	nnDist := make([]float64, n)
	for i := 0; i < n; i++ {
		id[i] = Leaf(i)
		size[i] = 1
		nn[i], nnDist[i] = scanNearest(d, n, i, n)
	}

	raw := make([]rawMerge, 0, n-1)
	active := n

	for step := 1; step < n; step++ {
		a := floats.MinIdx(nnDist[:active])
		b := nn[a]
		raw = append(raw, rawMerge{a: id[a], b: id[b], height: nnDist[a]})
		if b < a {
			a, b = b, a
		}

		sa := float64(size[a])
		sb := float64(size[b])
		dab := d[a*n+b]

		// Lance-Williams update for Ward, computed against both parent
		// rows before slot b is recycled:
		//   d(ab,k) = ((sa+sk)d(a,k) + (sb+sk)d(b,k) - sk*d(a,b)) / (sa+sb+sk)
		for k := 0; k < active; k++ {
			if k == a || k == b {
				continue
			}
			sk := float64(size[k])
			dk := ((sa+sk)*d[a*n+k] + (sb+sk)*d[b*n+k] - sk*dab) / (sa + sb + sk)
			d[a*n+k] = dk
			d[k*n+a] = dk
		}

		id[a] = Step(step)
		size[a] += size[b]

		// The merged cluster absorbs b's identity before the slot moves.
		for k := 0; k < active; k++ {
			if k == a || k == b {
				continue
			}
			if nn[k] == b {
				nn[k] = a
			}
		}

		last := active - 1
		if b != last {
			copyRowCol(d, n, b, last)
			id[b], size[b] = id[last], size[last]
			nn[b], nnDist[b] = nn[last], nnDist[last]
			for k := 0; k < last; k++ {
				if nn[k] == last {
					nn[k] = b
				}
			}
		}
		active--

		// Distances to the merged cluster changed in both directions, so
		// pointers into it must be recomputed; everyone else cheap-checks
		// the fresh row.
		for k := 0; k < active; k++ {
			if k == a {
				continue
			}
			if nn[k] == a {
				nn[k], nnDist[k] = scanNearest(d, n, k, active)
			} else if dak := d[a*n+k]; dak < nnDist[k] {
				nn[k], nnDist[k] = a, dak
			}
		}
		nn[a], nnDist[a] = scanNearest(d, n, a, active)
	}

	if squared {
		for i := range raw {
			raw[i].height = math.Sqrt(raw[i].height)
		}
	}
	return raw
}
