package hclust

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is a validated, read-only n×n symmetric matrix of
// pairwise dissimilarities, stored flat in row-major order. Diagonal
// entries are never read by the clustering engines.
type DistanceMatrix struct {
	n    int
	data []float64
}

// NewDistanceMatrix validates d as a square symmetric matrix and copies
// it into a DistanceMatrix. Returns ErrInsufficientInput for zero rows,
// ErrNotSquare for ragged rows, ErrAsymmetric if d[i][j] != d[j][i].
func NewDistanceMatrix(d [][]float64) (*DistanceMatrix, error) {
	n := len(d)
	if n < 1 {
		return nil, fmt.Errorf("%w: got 0 rows", ErrInsufficientInput)
	}

	flat := make([]float64, n*n)
	for i, row := range d {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
		copy(flat[i*n:(i+1)*n], row)
	}

	m := &DistanceMatrix{n: n, data: flat}
	if err := m.checkSymmetry(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewDistanceMatrixFlat validates and copies a flat row-major matrix of
// length n*n, where data[i*n+j] is the distance between observations
// i and j.
func NewDistanceMatrixFlat(data []float64, n int) (*DistanceMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInsufficientInput, n)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: flat length %d does not match n*n = %d (n=%d)", ErrNotSquare, len(data), n*n, n)
	}

	flat := make([]float64, n*n)
	copy(flat, data)

	m := &DistanceMatrix{n: n, data: flat}
	if err := m.checkSymmetry(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewDistanceMatrixFromSym copies a gonum symmetric matrix. Symmetry is
// guaranteed by the type, so only the size is validated.
func NewDistanceMatrixFromSym(s mat.Symmetric) (*DistanceMatrix, error) {
	n := s.SymmetricDim()
	if n < 1 {
		return nil, fmt.Errorf("%w: symmetric matrix has dimension %d", ErrInsufficientInput, n)
	}

	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := s.At(i, j)
			flat[i*n+j] = v
			flat[j*n+i] = v
		}
	}
	return &DistanceMatrix{n: n, data: flat}, nil
}

// Sym returns a copy of the matrix as a gonum *mat.SymDense.
func (m *DistanceMatrix) Sym() *mat.SymDense {
	s := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			s.SetSym(i, j, m.data[i*m.n+j])
		}
	}
	return s
}

// Len returns the number of observations n.
func (m *DistanceMatrix) Len() int { return m.n }

// At returns the distance between observations i and j.
func (m *DistanceMatrix) At(i, j int) float64 { return m.data[i*m.n+j] }

func (m *DistanceMatrix) checkSymmetry() error {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return fmt.Errorf("%w: d[%d][%d]=%g but d[%d][%d]=%g",
					ErrAsymmetric, i, j, m.data[i*m.n+j], j, i, m.data[j*m.n+i])
			}
		}
	}
	return nil
}

// String renders the matrix for debugging with aligned columns.
func (m *DistanceMatrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%10.4g", m.data[i*m.n+j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
