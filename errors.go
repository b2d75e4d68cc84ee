package hclust

import "errors"

// Sentinel errors returned by matrix construction and Agglomerate. All
// are detected synchronously before any merge work begins; return sites
// wrap them with detail via fmt.Errorf("%w: ...").
var (
	// ErrNotSquare reports an input whose rows (or flat length) do not
	// form an n×n square.
	ErrNotSquare = errors.New("hclust: distance matrix is not square")

	// ErrAsymmetric reports d[i][j] != d[j][i] for some i, j.
	ErrAsymmetric = errors.New("hclust: distance matrix is not symmetric")

	// ErrUnsupportedMethod reports an unrecognized linkage method tag.
	ErrUnsupportedMethod = errors.New("hclust: unsupported linkage method")

	// ErrInsufficientInput reports an input with no observations.
	ErrInsufficientInput = errors.New("hclust: at least one observation is required")
)
