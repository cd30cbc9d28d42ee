// Package solver: functional configuration.
//
// Defaults (single source of truth):
//   - DefaultTolerance    — relative residual target of the iterative path.
//   - DefaultMaxIterFactor — iteration budget per unknown (maxIter = factor·N)
//     when WithMaxIterations is not given.
//   - GMRES restart defaults to the linsolve default (0 ⇒ library default).
package solver

import "math"

const (
	// DefaultTolerance is the relative residual tolerance of the iterative path.
	DefaultTolerance = 1e-10

	// DefaultMaxIterFactor scales the default iteration budget with the
	// system dimension.
	DefaultMaxIterFactor = 10
)

// Option configures New.
type Option func(*Solver) error

// WithTolerance sets the relative residual tolerance of the iterative path.
// Rejects non-positive, NaN or Inf values with ErrBadConfig.
func WithTolerance(tol float64) Option {
	return func(s *Solver) error {
		if !(tol > 0) || math.IsInf(tol, 0) {
			return ErrBadConfig
		}
		s.tol = tol

		return nil
	}
}

// WithMaxIterations caps the iterative path at n iterations.
// Rejects n <= 0 with ErrBadConfig.
func WithMaxIterations(n int) Option {
	return func(s *Solver) error {
		if n <= 0 {
			return ErrBadConfig
		}
		s.maxIter = n

		return nil
	}
}

// WithRestart sets the GMRES restart length.
// Rejects negative values with ErrBadConfig; 0 keeps the library default.
func WithRestart(k int) Option {
	return func(s *Solver) error {
		if k < 0 {
			return ErrBadConfig
		}
		s.restart = k

		return nil
	}
}
