// Package dirichlet: boundary predicates and the default product-boundary rule.
package dirichlet

import (
	"fmt"
	"math"

	"github.com/tensorgrid/productfem/domain"
)

// Eps is the tolerance under which a coordinate counts as lying on a
// marginal boundary dof: absolute difference in 1-D, Euclidean norm in 2-D.
const Eps = 3e-10

// Predicate reports whether the pair (x, y) lies on the product boundary.
// It must be total over the dof-coordinate table and deterministic.
type Predicate func(x, y domain.Point) bool

// Value prescribes the solution value at a boundary coordinate pair.
type Value func(x, y domain.Point) float64

// nearFunc is the distance rule of the default predicate. It is selected
// once from the geometric dimension at construction, not re-dispatched per
// coordinate pair.
type nearFunc func(p, q domain.Point) bool

func near1D(p, q domain.Point) bool { return math.Abs(p[0]-q[0]) < Eps }

func near2D(p, q domain.Point) bool { return p.DistanceTo(q) < Eps }

// Default builds the default product-boundary predicate for the base domain
// discretized by d: a pair (x, y) is on the boundary iff x or y is within
// Eps of some marginal boundary dof coordinate, i.e. the rule
// bdy(Ω)×Ω ∪ Ω×bdy(Ω). The marginal boundary enumeration is consumed from
// d, not recomputed here.
//
// The distance rule is fixed from d.GeomDim() when Default returns; a
// dimension other than 1 or 2 fails with ErrDimension here, structurally,
// never as an undefined result during evaluation.
// Complexity: O(#boundary dofs) per predicate call.
func Default(d domain.Discretization) (Predicate, error) {
	if d == nil {
		return nil, fmt.Errorf("Default: nil discretization: %w", ErrConfiguration)
	}

	var near nearFunc
	switch dim := d.GeomDim(); dim {
	case 1:
		near = near1D
	case 2:
		near = near2D
	default:
		return nil, fmt.Errorf("Default: geometric dimension %d: %w", dim, ErrDimension)
	}

	coords := d.DofCoords()
	var bdy []domain.Point
	for _, i := range d.BoundaryDofs() {
		if i < 0 || i >= len(coords) {
			return nil, fmt.Errorf("Default: boundary dof %d outside marginal table: %w", i, ErrConfiguration)
		}
		bdy = append(bdy, coords[i])
	}

	return func(x, y domain.Point) bool {
		for _, p := range bdy {
			if near(x, p) || near(y, p) {
				return true
			}
		}

		return false
	}, nil
}
