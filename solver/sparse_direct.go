// Package solver: direct elimination on sparse-compressed systems.
package solver

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorgrid/productfem/linsys"
	"github.com/tensorgrid/productfem/logger"
)

// solveSparse is the direct sparse path: Gaussian elimination with partial
// pivoting on a row-map working copy of A. The CSR is scattered once into
// per-row maps (the row-mutable form elimination needs), eliminated, and
// back-substituted; A itself is never modified.
//
// A pivot column whose remaining entries are all zero means A is singular;
// that surfaces as ErrSingular naming the sparse path.
// Complexity: O(n·fill) time, O(nnz+fill) memory; worst case dense O(n³).
func solveSparse(a *sparse.CSR, b *mat.VecDense) (*mat.VecDense, error) {
	if a == nil {
		return nil, linsys.ErrNilOperand
	}
	n := b.Len()

	log := logger.Logger()
	log.Debug().
		Int("n", n).
		Int("nnz", a.NNZ()).
		Str("path", "sparse elimination").
		Msg("solving")

	// Scatter A into row maps and copy b; elimination mutates both.
	rows := make([]map[int]float64, n)
	for i := range rows {
		rows[i] = make(map[int]float64)
	}
	a.DoNonZero(func(i, j int, v float64) {
		rows[i][j] = v
	})
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		rhs[i] = b.AtVec(i)
	}

	// Forward elimination with partial pivoting (row swap by reference).
	for k := 0; k < n; k++ {
		p, pv := k, math.Abs(rows[k][k])
		for i := k + 1; i < n; i++ {
			if av := math.Abs(rows[i][k]); av > pv {
				p, pv = i, av
			}
		}
		if pv == 0 {
			return nil, fmt.Errorf("Solve(sparse elimination): zero pivot at column %d: %w", k, ErrSingular)
		}
		if p != k {
			rows[k], rows[p] = rows[p], rows[k]
			rhs[k], rhs[p] = rhs[p], rhs[k]
		}

		piv := rows[k][k]
		for i := k + 1; i < n; i++ {
			aik, ok := rows[i][k]
			if !ok || aik == 0 {
				continue
			}
			factor := aik / piv
			for j, v := range rows[k] {
				rows[i][j] -= factor * v
			}
			delete(rows[i], k) // eliminated exactly, keep the row sparse
			rhs[i] -= factor * rhs[k]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for k := n - 1; k >= 0; k-- {
		sum := rhs[k]
		for j, v := range rows[k] {
			if j > k {
				sum -= v * x[j]
			}
		}
		x[k] = sum / rows[k][k]
	}

	return mat.NewVecDense(n, x), nil
}
