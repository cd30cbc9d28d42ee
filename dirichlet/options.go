// Package dirichlet: functional configuration for BC construction.
//
// Defaults: boundary value 0.0 (constant), copy-on-apply. There is no
// default predicate source: a BC needs either WithPredicate or
// WithDefaultRule, and New rejects the absence (or a conflict) of both with
// ErrConfiguration. All options are resolved exactly once at construction;
// nothing is re-inspected per dof.
package dirichlet

import "github.com/tensorgrid/productfem/domain"

// Option configures New.
type Option func(*config)

type config struct {
	pred    Predicate
	predSet bool

	disc domain.Discretization // default-rule source

	constant    float64
	constantSet bool

	fn    Value
	fnSet bool

	inPlace bool
}

// WithPredicate installs a user boundary rule. Mutually exclusive with
// WithDefaultRule. A nil predicate is rejected by New.
func WithPredicate(p Predicate) Option {
	return func(c *config) {
		c.pred = p
		c.predSet = true
	}
}

// WithDefaultRule installs the default product-boundary rule
// bdy(Ω)×Ω ∪ Ω×bdy(Ω) built from the marginal discretization d.
// Mutually exclusive with WithPredicate.
func WithDefaultRule(d domain.Discretization) Option {
	return func(c *config) { c.disc = d }
}

// WithConstant prescribes the constant boundary value v. Broadcast to every
// boundary dof without a per-dof call. Mutually exclusive with WithValue.
func WithConstant(v float64) Option {
	return func(c *config) {
		c.constant = v
		c.constantSet = true
	}
}

// WithValue prescribes the boundary value by a callable evaluated at each
// boundary coordinate pair. Mutually exclusive with WithConstant. A nil
// callable is rejected by New.
func WithValue(f Value) Option {
	return func(c *config) {
		c.fn = f
		c.fnSet = true
	}
}

// WithInPlace makes Apply mutate the caller's system instead of editing a
// copy. Note that the sparse path allocates a rebuilt matrix regardless (a
// compressed structure is not row-mutable); in-place there means the
// returned system is the caller's instance with its operand swapped and its
// right-hand side mutated.
func WithInPlace() Option {
	return func(c *config) { c.inPlace = true }
}
