// Package dirichlet: the product Dirichlet boundary condition.
package dirichlet

import (
	"fmt"

	"github.com/tensorgrid/productfem/domain"
	"github.com/tensorgrid/productfem/linsys"
	"github.com/tensorgrid/productfem/logger"
)

// BC is a Dirichlet condition on the product boundary: a predicate selecting
// boundary dofs from the dof-coordinate table and a prescribed value per
// boundary coordinate pair.
//
// The table and predicate are shared read-only inputs. Boundary indices,
// coordinates and values are recomputed from them on every request — there
// is no internal cache, so a caller that mutates nothing may memoize the
// results freely.
type BC struct {
	table *domain.Table
	pred  Predicate

	value    Value
	constant *float64 // non-nil: broadcast without invoking value per dof

	inPlace bool
}

// New builds a BC over table. Exactly one predicate source is required
// (WithPredicate or WithDefaultRule); the boundary value defaults to the
// constant 0.0. Conflicting or missing options fail with ErrConfiguration,
// and an unsupported default-rule dimension fails with ErrDimension.
func New(table *domain.Table, opts ...Option) (*BC, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("New: nil or empty table: %w", ErrConfiguration)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	bc := &BC{table: table, inPlace: cfg.inPlace}

	// Resolve the predicate source exactly once.
	switch {
	case cfg.predSet && cfg.disc != nil:
		return nil, fmt.Errorf("New: both WithPredicate and WithDefaultRule given: %w", ErrConfiguration)
	case cfg.predSet:
		if cfg.pred == nil {
			return nil, fmt.Errorf("New: nil predicate: %w", ErrConfiguration)
		}
		bc.pred = cfg.pred
	case cfg.disc != nil:
		p, err := Default(cfg.disc)
		if err != nil {
			return nil, err
		}
		bc.pred = p
	default:
		return nil, fmt.Errorf("New: no boundary rule (use WithPredicate or WithDefaultRule): %w", ErrConfiguration)
	}

	// Resolve the value into the uniform callable form, remembering
	// constants so Values can broadcast.
	switch {
	case cfg.constantSet && cfg.fnSet:
		return nil, fmt.Errorf("New: both WithConstant and WithValue given: %w", ErrConfiguration)
	case cfg.fnSet:
		if cfg.fn == nil {
			return nil, fmt.Errorf("New: nil value callable: %w", ErrConfiguration)
		}
		bc.value = cfg.fn
	default:
		v := cfg.constant // zero value when neither option was given
		bc.constant = &v
		bc.value = func(_, _ domain.Point) float64 { return v }
	}

	return bc, nil
}

// DefaultBC is the zero-valued default-rule condition over table, the usual
// starting point for hitting-time style problems.
func DefaultBC(table *domain.Table, d domain.Discretization) (*BC, error) {
	return New(table, WithDefaultRule(d))
}

// DofIndices returns the indices of all boundary dofs, in table order. One
// full pass over the table per call.
// Complexity: O(N) predicate evaluations.
func (bc *BC) DofIndices() []int {
	var idx []int
	bc.table.Each(func(i int, p domain.Pair) bool {
		if bc.pred(p.X, p.Y) {
			idx = append(idx, i)
		}

		return true
	})

	return idx
}

// DofCoords returns the coordinate pairs of the boundary dofs, positionally
// aligned with DofIndices.
// Complexity: O(N) predicate evaluations.
func (bc *BC) DofCoords() []domain.Pair {
	var coords []domain.Pair
	bc.table.Each(func(_ int, p domain.Pair) bool {
		if bc.pred(p.X, p.Y) {
			coords = append(coords, p)
		}

		return true
	})

	return coords
}

// Values returns the prescribed value per boundary dof, positionally aligned
// with DofIndices. A constant boundary value is broadcast without invoking a
// callable per dof.
// Complexity: O(N) predicate evaluations (+ one value call per boundary dof
// for callable values).
func (bc *BC) Values() []float64 {
	coords := bc.DofCoords()
	vals := make([]float64, len(coords))
	if bc.constant != nil {
		v := *bc.constant
		for k := range vals {
			vals[k] = v
		}

		return vals
	}
	for k, p := range coords {
		vals[k] = bc.value(p.X, p.Y)
	}

	return vals
}

// Apply enforces the condition on sys: every boundary row of A becomes the
// standard basis row and the matching entry of b becomes the prescribed
// value. Non-boundary rows and entries are untouched, and applying twice is
// the same as applying once (rows are overwritten, not accumulated).
//
// Ownership: by default the edits land on a copy and the caller's system is
// left unmodified; WithInPlace mutates and returns the caller's instance
// (the sparse matrix is still rebuilt — see WithInPlace). An empty boundary
// set edits nothing, but the copy policy still holds: the default mode
// returns a clone and WithInPlace returns the caller's instance. Operator
// systems are the exception: an opaque operand cannot be cloned, so the
// caller's instance comes back unmodified.
//
// Fails with linsys.ErrDimensionMismatch when A or b disagree with the
// table dimension, and with linsys.ErrUnsupported for operator-backed or
// invalid operands; no partial mutation occurs on any failure.
func (bc *BC) Apply(sys *linsys.System) (*linsys.System, error) {
	if sys == nil || sys.B == nil {
		return nil, linsys.ErrNilOperand
	}
	n, c := sys.A.Dims()
	if n != c || n != bc.table.Len() || sys.B.Len() != n {
		return nil, fmt.Errorf("Apply: system %dx%d, rhs %d, table %d: %w",
			n, c, sys.B.Len(), bc.table.Len(), linsys.ErrDimensionMismatch)
	}

	idx := bc.DofIndices()
	if len(idx) == 0 {
		if bc.inPlace {
			return sys, nil
		}
		a, err := sys.A.Clone()
		if err != nil {
			// Operator operands cannot be cloned; a no-op must not fail,
			// so the caller's instance is handed back.
			return sys, nil
		}

		return &linsys.System{A: a, B: sys.CloneB()}, nil
	}
	vals := bc.Values()

	log := logger.Logger()
	log.Debug().
		Int("n", n).
		Int("boundaryDofs", len(idx)).
		Str("representation", sys.A.Kind().String()).
		Bool("inPlace", bc.inPlace).
		Msg("applying product Dirichlet condition")

	// Matrix first: an unsupported representation must abort before the
	// right-hand side is touched.
	a, err := linsys.IdentifyRows(sys.A, idx, bc.inPlace)
	if err != nil {
		return nil, err
	}

	b := sys.B
	if !bc.inPlace {
		b = sys.CloneB()
	}
	for k, i := range idx {
		b.SetVec(i, vals[k])
	}

	if bc.inPlace {
		sys.A = a

		return sys, nil
	}

	return &linsys.System{A: a, B: b}, nil
}
