// Package domain: core value types (Point, Pair, Table).
package domain

import "math"

// Point is a coordinate in the base domain Ω with 1 or 2 components.
// Points are treated as immutable once stored in a Table; callers must not
// mutate a Point obtained from this package.
type Point []float64

// Dim returns the number of components of p.
// Complexity: O(1).
func (p Point) Dim() int { return len(p) }

// DistanceTo returns the Euclidean distance between p and q, computed over
// the shorter of the two component counts. For 1-D points this reduces to
// the absolute difference.
// Complexity: O(dim).
func (p Point) DistanceTo(q Point) float64 {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := p[i] - q[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Clone returns an independent copy of p.
// Complexity: O(dim).
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)

	return q
}

// Pair is a coordinate pair (X, Y) ∈ Ω×Ω, the location of one product dof.
type Pair struct {
	X Point
	Y Point
}

// Table is the dof-coordinate table of the product discretization: an
// ordered sequence mapping linear-system index → Pair. The order is fixed by
// the external discretization at construction time and is never altered;
// every derived sequence in this module (boundary indices, boundary values,
// solution fields) is positionally aligned with it.
type Table struct {
	pairs []Pair
}

// NewTable builds a Table from pairs. The slice is copied shallowly (the
// Points themselves are shared and treated as read-only).
// Returns ErrEmptyTable when pairs is empty.
// Complexity: O(n).
func NewTable(pairs []Pair) (*Table, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyTable
	}
	ps := make([]Pair, len(pairs))
	copy(ps, pairs)

	return &Table{pairs: ps}, nil
}

// TensorTable builds the product-domain table of d with the tensor ordering
// ij = i·m + j, where m = len(d.DofCoords()), x runs over index i and y over
// index j. This matches the ordering produced by tensor-product assembly.
// Complexity: O(m²) time and memory.
func TensorTable(d Discretization) (*Table, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	coords := d.DofCoords()
	m := len(coords)
	if m == 0 {
		return nil, ErrEmptyTable
	}

	pairs := make([]Pair, 0, m*m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			pairs = append(pairs, Pair{X: coords[i], Y: coords[j]})
		}
	}

	return &Table{pairs: pairs}, nil
}

// Len returns the number of dofs in the table, which equals the dimension of
// any linear system assembled over it.
// Complexity: O(1).
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.pairs)
}

// At returns the coordinate pair of dof i.
// Returns ErrOutOfRange when i is outside [0, Len).
// Complexity: O(1).
func (t *Table) At(i int) (Pair, error) {
	if t == nil {
		return Pair{}, ErrNilInput
	}
	if i < 0 || i >= len(t.pairs) {
		return Pair{}, ErrOutOfRange
	}

	return t.pairs[i], nil
}

// Each calls fn for every (index, pair) entry in table order until fn
// returns false. It exists so scans over the table avoid per-entry bounds
// checks and copies.
// Complexity: O(n) calls.
func (t *Table) Each(fn func(i int, p Pair) bool) {
	if t == nil || fn == nil {
		return
	}
	for i, p := range t.pairs {
		if !fn(i, p) {
			return
		}
	}
}
