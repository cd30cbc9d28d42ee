// Package linsys: the Kind enumeration and the Operand tagged union.
package linsys

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Kind identifies the storage representation of a system matrix. The set is
// closed: every dispatch over Kind must handle all three representations and
// fail with ErrUnsupported on anything else. KindInvalid is the zero value so
// an unset Operand can never dispatch silently.
type Kind int

const (
	// KindInvalid is the zero value; operations on it fail with ErrUnsupported.
	KindInvalid Kind = iota

	// KindDense marks a fully stored row-major matrix (*mat.Dense).
	KindDense

	// KindSparse marks a compressed sparse row matrix (*sparse.CSR).
	KindSparse

	// KindOperator marks an opaque matrix-free operator (Operator).
	KindOperator
)

// String returns a short human-readable name for k.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	case KindOperator:
		return "operator"
	default:
		return "invalid"
	}
}

// Operator is the opaque-handle contract: a square linear operator that can
// only be applied, not inspected. It matches the MulVecToer interface of
// gonum.org/v1/exp/linsolve, so any Operator is directly consumable by the
// iterative solver path.
type Operator interface {
	// Dims returns the row and column counts of the operator.
	Dims() (r, c int)
	// MulVecTo computes dst = A·x (or Aᵀ·x when trans is true).
	MulVecTo(dst *mat.VecDense, trans bool, x mat.Vector)
}

// Operand is a tagged union over the three matrix representations. Exactly
// one payload is set, selected by kind; the zero Operand is KindInvalid.
type Operand struct {
	kind   Kind
	dense  *mat.Dense
	sparse *sparse.CSR
	op     Operator
}

// NewDense wraps a dense matrix as an Operand.
func NewDense(a *mat.Dense) Operand { return Operand{kind: KindDense, dense: a} }

// NewSparse wraps a compressed sparse row matrix as an Operand.
func NewSparse(a *sparse.CSR) Operand { return Operand{kind: KindSparse, sparse: a} }

// NewOperator wraps an opaque operator as an Operand.
func NewOperator(a Operator) Operand { return Operand{kind: KindOperator, op: a} }

// Kind returns the representation tag of o.
func (o Operand) Kind() Kind { return o.kind }

// Dense returns the dense payload; ok is false unless Kind is KindDense.
func (o Operand) Dense() (a *mat.Dense, ok bool) { return o.dense, o.kind == KindDense }

// Sparse returns the sparse payload; ok is false unless Kind is KindSparse.
func (o Operand) Sparse() (a *sparse.CSR, ok bool) { return o.sparse, o.kind == KindSparse }

// Op returns the operator payload; ok is false unless Kind is KindOperator.
func (o Operand) Op() (a Operator, ok bool) { return o.op, o.kind == KindOperator }

// Dims returns the dimensions of the wrapped matrix, or (0, 0) for an
// invalid or nil-payload Operand.
func (o Operand) Dims() (r, c int) {
	switch o.kind {
	case KindDense:
		if o.dense == nil {
			return 0, 0
		}

		return o.dense.Dims()
	case KindSparse:
		if o.sparse == nil {
			return 0, 0
		}

		return o.sparse.Dims()
	case KindOperator:
		if o.op == nil {
			return 0, 0
		}

		return o.op.Dims()
	default:
		return 0, 0
	}
}

// Clone returns a deep copy of o. Dense and sparse payloads are copied;
// cloning an operator is ErrUnsupported (an opaque handle cannot be copied
// through its application-only contract).
// Complexity: O(n²) dense, O(nnz) sparse.
func (o Operand) Clone() (Operand, error) {
	switch o.kind {
	case KindDense:
		if o.dense == nil {
			return Operand{}, ErrNilOperand
		}

		return NewDense(mat.DenseCopyOf(o.dense)), nil
	case KindSparse:
		if o.sparse == nil {
			return Operand{}, ErrNilOperand
		}

		return NewSparse(cloneCSR(o.sparse)), nil
	default:
		return Operand{}, ErrUnsupported
	}
}

// cloneCSR deep-copies a CSR by scattering its nonzeros into a fresh DOK and
// compressing again. O(nnz); the round-trip keeps us independent of the CSR
// internals.
func cloneCSR(a *sparse.CSR) *sparse.CSR {
	r, c := a.Dims()
	dok := sparse.NewDOK(r, c)
	a.DoNonZero(func(i, j int, v float64) {
		dok.Set(i, j, v)
	})

	return dok.ToCSR()
}
