// Package linsys: sentinel error set.
// Algorithms return these sentinels (wrapped with context at facades);
// callers and tests match them via errors.Is. No panics on user input.
package linsys

import "errors"

var (
	// ErrUnsupported indicates a matrix representation not handled by the
	// closed three-way dispatch: either the zero/invalid Operand, or an
	// operation a representation has no primitive for (operator row edits,
	// operator clone). It signals a missing extension, not a data error.
	ErrUnsupported = errors.New("linsys: unsupported system representation")

	// ErrDimensionMismatch indicates disagreement between a matrix, its
	// right-hand side, or the dof-coordinate table (non-square A included).
	ErrDimensionMismatch = errors.New("linsys: dimension mismatch")

	// ErrNilOperand indicates a nil matrix, vector or operator payload.
	ErrNilOperand = errors.New("linsys: nil operand")

	// ErrBadIndex indicates a row index outside the matrix dimension.
	ErrBadIndex = errors.New("linsys: row index out of range")
)
