package hclust

import "fmt"

// Method selects the linkage criterion.
type Method string

const (
	MethodSingle   Method = "single"
	MethodComplete Method = "complete"
	MethodAverage  Method = "average"
	MethodWard1    Method = "ward1"
	MethodWard2    Method = "ward2"
)

// Agglomerate builds the hierarchical clustering tree of m under the
// given linkage criterion. The result is canonical: merges ascend in
// height and operands follow the reference ordering convention. A
// one-observation matrix yields a dendrogram with no merges.
//
// Each call owns its scratch state, so concurrent calls on independent
// inputs need no synchronization.
func Agglomerate(m *DistanceMatrix, method Method) (*Dendrogram, error) {
	if m == nil || m.Len() < 1 {
		return nil, fmt.Errorf("%w: nil or empty distance matrix", ErrInsufficientInput)
	}

	var raw []rawMerge
	switch method {
	case MethodSingle:
		raw = singleLink(m)
	case MethodComplete:
		raw = chainLink(m, completeLinkage)
	case MethodAverage:
		raw = chainLink(m, averageLinkage)
	case MethodWard1:
		raw = wardLink(m, false)
	case MethodWard2:
		raw = wardLink(m, true)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}

	steps, _ := canonicalize(raw)
	return newDendrogram(steps, m.Len(), method), nil
}
