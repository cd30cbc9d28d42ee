// Package solver: representation-dispatched solve.
package solver

import (
	"fmt"

	"gonum.org/v1/exp/linsolve"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorgrid/productfem/domain"
	"github.com/tensorgrid/productfem/linsys"
	"github.com/tensorgrid/productfem/logger"
)

// Solver inverts linear systems assembled over a dof-coordinate table and
// returns solutions as fields over the product domain. A Solver is immutable
// after New and safe to reuse across solves (one in-flight solve per System
// instance, per the ownership contract of linsys).
type Solver struct {
	table *domain.Table

	// iterative-path settings
	tol     float64
	maxIter int // 0 ⇒ DefaultMaxIterFactor·N, decided per solve
	restart int
}

// New builds a Solver over table.
// Returns ErrBadConfig for a nil/empty table or an invalid option value.
func New(table *domain.Table, opts ...Option) (*Solver, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("New: nil or empty table: %w", ErrBadConfig)
	}

	s := &Solver{table: table, tol: DefaultTolerance}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}

	return s, nil
}

// Solve inverts sys and returns the solution as a field over the product
// domain, one value per table entry in table order. Dispatch is a closed
// switch on the matrix representation; anything outside the three supported
// kinds fails with linsys.ErrUnsupported. No partial result is ever
// returned: on failure the field is nil.
func (s *Solver) Solve(sys *linsys.System) (*domain.Field, error) {
	if sys == nil || sys.B == nil {
		return nil, linsys.ErrNilOperand
	}
	n, c := sys.A.Dims()
	if n != c || sys.B.Len() != n || n != s.table.Len() {
		return nil, fmt.Errorf("Solve: system %dx%d, rhs %d, table %d: %w",
			n, c, sys.B.Len(), s.table.Len(), linsys.ErrDimensionMismatch)
	}

	var (
		x   *mat.VecDense
		err error
	)
	switch sys.A.Kind() {
	case linsys.KindDense:
		a, _ := sys.A.Dense()
		x, err = solveDense(a, sys.B)
	case linsys.KindSparse:
		a, _ := sys.A.Sparse()
		x, err = solveSparse(a, sys.B)
	case linsys.KindOperator:
		a, _ := sys.A.Op()
		x, err = s.solveIterative(a, sys.B)
	default:
		return nil, fmt.Errorf("Solve: %v representation: %w", sys.A.Kind(), linsys.ErrUnsupported)
	}
	if err != nil {
		return nil, err
	}

	return domain.NewField(s.table, x)
}

// solveDense is the direct dense path: LU factorization and a single
// triangular solve.
// Complexity: O(n³).
func solveDense(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	if a == nil {
		return nil, linsys.ErrNilOperand
	}
	n := b.Len()

	log := logger.Logger()
	log.Debug().Int("n", n).Str("path", "dense LU").Msg("solving")

	var lu mat.LU
	lu.Factorize(a)

	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return nil, fmt.Errorf("Solve(dense LU): %w: %v", ErrSingular, err)
	}

	return x, nil
}

// solveIterative is the opaque-operator path: restarted GMRES through
// gonum's linsolve, with the Solver's tolerance and iteration budget.
func (s *Solver) solveIterative(a linsys.Operator, b *mat.VecDense) (*mat.VecDense, error) {
	if a == nil {
		return nil, linsys.ErrNilOperand
	}
	n := b.Len()
	maxIter := s.maxIter
	if maxIter == 0 {
		maxIter = DefaultMaxIterFactor * n
	}

	result, err := linsolve.Iterative(a, b, &linsolve.GMRES{Restart: s.restart}, &linsolve.Settings{
		Tolerance:     s.tol,
		MaxIterations: maxIter,
	})
	if err != nil {
		return nil, fmt.Errorf("Solve(operator GMRES, tol=%g, maxIter=%d): %w: %v",
			s.tol, maxIter, ErrNotConverged, err)
	}

	log := logger.Logger()
	log.Debug().
		Int("n", n).
		Str("path", "operator GMRES").
		Int("mulVec", result.Stats.MulVec).
		Float64("residual", result.ResidualNorm).
		Msg("solved")

	return result.X, nil
}
