// Package linsys: the (A, b) system bundle.
package linsys

import "gonum.org/v1/gonum/mat"

// System bundles a square system matrix A and its right-hand side b.
// A System is the sole mutable resource of this module: at most one
// Apply/Solve is assumed in flight per instance, and whether edits land on
// this instance or on a copy is decided by the caller (see dirichlet).
type System struct {
	A Operand
	B *mat.VecDense
}

// NewSystem validates and bundles (A, b).
// Returns ErrNilOperand for a missing payload or b, and ErrDimensionMismatch
// when A is not square or len(b) differs from A's dimension.
// Complexity: O(1).
func NewSystem(a Operand, b *mat.VecDense) (*System, error) {
	if a.Kind() == KindInvalid || b == nil {
		return nil, ErrNilOperand
	}
	r, c := a.Dims()
	if r == 0 && c == 0 {
		return nil, ErrNilOperand
	}
	if r != c || b.Len() != r {
		return nil, ErrDimensionMismatch
	}

	return &System{A: a, B: b}, nil
}

// Dim returns the dimension N of the system.
func (s *System) Dim() int {
	r, _ := s.A.Dims()

	return r
}

// CloneB returns an independent copy of the right-hand side.
// Complexity: O(n).
func (s *System) CloneB() *mat.VecDense {
	out := mat.NewVecDense(s.B.Len(), nil)
	out.CopyVec(s.B)

	return out
}
