// Package solver: sentinel error set.
package solver

import "errors"

var (
	// ErrSingular indicates that A is (numerically) singular on a direct
	// path: a failed LU solve on the dense path, or a zero pivot during
	// elimination on the sparse path. The wrapping error names the path.
	ErrSingular = errors.New("solver: singular matrix")

	// ErrNotConverged indicates that the iterative path gave up before
	// reaching the requested tolerance. The wrapping error carries the
	// underlying solver diagnostics.
	ErrNotConverged = errors.New("solver: iterative solve did not converge")

	// ErrBadConfig indicates invalid construction input: a nil table or a
	// nonsensical option value (non-positive tolerance or iteration budget).
	ErrBadConfig = errors.New("solver: invalid configuration")
)
