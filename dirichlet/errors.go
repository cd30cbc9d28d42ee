// Package dirichlet: sentinel error set.
package dirichlet

import "errors"

var (
	// ErrConfiguration indicates invalid construction input: a nil table or
	// callback, conflicting predicate or value options, or no boundary rule
	// at all. Surfaced at New, never deferred to Apply.
	ErrConfiguration = errors.New("dirichlet: invalid configuration")

	// ErrDimension indicates a base domain whose geometric dimension is
	// neither 1 nor 2; the default boundary rule supports nothing else.
	ErrDimension = errors.New("dirichlet: unsupported geometric dimension")
)
