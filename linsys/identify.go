// Package linsys: representation-dispatched boundary-row replacement.
package linsys

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// IdentifyRows replaces each listed row of A with the corresponding standard
// basis row (1 on the diagonal, 0 elsewhere) and returns the edited operand.
// The numerical result is representation-independent; the strategy is not:
//
//   - dense: direct row assignment. With inPlace the caller's matrix is
//     mutated and returned; otherwise the edit lands on a fresh clone.
//   - sparse: CSR is not row-mutable, so the matrix is rebuilt through a
//     row-mutable DOK (drop boundary-row entries, set unit diagonals) and
//     compressed again. A new CSR is always allocated; with inPlace it is
//     simply the one returned in the operand. Cost O(nnz).
//   - operator: no native row-identify primitive exists on the opaque
//     contract; returns ErrUnsupported. Extension point.
//
// An empty rows slice is a no-op (the dense path still clones unless
// inPlace, keeping the copy policy uniform). A row index outside [0, N)
// returns ErrBadIndex before any mutation.
func IdentifyRows(a Operand, rows []int, inPlace bool) (Operand, error) {
	n, c := a.Dims()
	if n != c {
		return Operand{}, ErrDimensionMismatch
	}
	for _, i := range rows {
		if i < 0 || i >= n {
			return Operand{}, fmt.Errorf("IdentifyRows(%d): %w", i, ErrBadIndex)
		}
	}

	switch a.Kind() {
	case KindDense:
		m, _ := a.Dense()
		if m == nil {
			return Operand{}, ErrNilOperand
		}
		if !inPlace {
			m = mat.DenseCopyOf(m)
		}
		identifyDenseRows(m, rows)

		return NewDense(m), nil

	case KindSparse:
		m, _ := a.Sparse()
		if m == nil {
			return Operand{}, ErrNilOperand
		}

		return NewSparse(identifySparseRows(m, rows)), nil

	case KindOperator:
		return Operand{}, fmt.Errorf("IdentifyRows: operator representation: %w", ErrUnsupported)

	default:
		return Operand{}, fmt.Errorf("IdentifyRows: %v representation: %w", a.Kind(), ErrUnsupported)
	}
}

// identifyDenseRows overwrites each listed row of m with the basis row.
// One scratch row is reused across all replacements.
// Complexity: O(len(rows)·n).
func identifyDenseRows(m *mat.Dense, rows []int) {
	_, n := m.Dims()
	scratch := make([]float64, n)
	for _, i := range rows {
		for j := range scratch {
			scratch[j] = 0
		}
		scratch[i] = 1
		m.SetRow(i, scratch)
	}
}

// identifySparseRows rebuilds m with the listed rows replaced by basis rows.
// The CSR→DOK→CSR round-trip is the documented price of row mutation on a
// compressed structure.
// Complexity: O(nnz).
func identifySparseRows(m *sparse.CSR, rows []int) *sparse.CSR {
	r, c := m.Dims()
	skip := make(map[int]struct{}, len(rows))
	for _, i := range rows {
		skip[i] = struct{}{}
	}

	dok := sparse.NewDOK(r, c)
	m.DoNonZero(func(i, j int, v float64) {
		if _, drop := skip[i]; drop {
			return
		}
		dok.Set(i, j, v)
	})
	for _, i := range rows {
		dok.Set(i, i, 1)
	}

	return dok.ToCSR()
}
