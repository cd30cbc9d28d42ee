package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorgrid/productfem/domain"
)

// TestNewInterval_Validation rejects degenerate intervals with ErrBadDomain.
func TestNewInterval_Validation(t *testing.T) {
	_, err := domain.NewInterval(0, 1, 1)
	assert.ErrorIs(t, err, domain.ErrBadDomain, "n<2 must be rejected")

	_, err = domain.NewInterval(1, 0, 5)
	assert.ErrorIs(t, err, domain.ErrBadDomain, "inverted bounds must be rejected")

	_, err = domain.NewInterval(0, math.NaN(), 5)
	assert.ErrorIs(t, err, domain.ErrBadDomain, "NaN bound must be rejected")
}

// TestInterval_CoordsAndBoundary checks node placement and the endpoint
// boundary dofs for the canonical 5-node unit interval.
func TestInterval_CoordsAndBoundary(t *testing.T) {
	iv, err := domain.NewInterval(0, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, iv.GeomDim())

	coords := iv.DofCoords()
	require.Len(t, coords, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1.0}
	for i, c := range coords {
		assert.InDelta(t, want[i], c[0], 1e-15, "node %d", i)
	}

	assert.Equal(t, []int{0, 4}, iv.BoundaryDofs())
}

// TestRectGrid_CoordsAndBoundary checks grid ordering (iy·nx+ix) and that
// the boundary dofs are exactly the perimeter nodes.
func TestRectGrid_CoordsAndBoundary(t *testing.T) {
	g, err := domain.NewRectGrid(0, 1, 0, 1, 3, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, g.GeomDim())

	coords := g.DofCoords()
	require.Len(t, coords, 9)
	// node (ix=1, iy=2) has index 2*3+1=7 and coordinate (0.5, 1).
	assert.InDelta(t, 0.5, coords[7][0], 1e-15)
	assert.InDelta(t, 1.0, coords[7][1], 1e-15)

	// 3×3 grid: every node except the center (index 4) is on the perimeter.
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, g.BoundaryDofs())
}

// TestTensorTable_Order verifies the ij = i·m + j ordering of the product
// table against the marginal coordinates.
func TestTensorTable_Order(t *testing.T) {
	iv, err := domain.NewInterval(0, 1, 3)
	require.NoError(t, err)

	tbl, err := domain.TensorTable(iv)
	require.NoError(t, err)
	require.Equal(t, 9, tbl.Len())

	// Entry ij = 1*3 + 2 pairs x=node1 with y=node2.
	p, err := tbl.At(5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p.X[0], 1e-15)
	assert.InDelta(t, 1.0, p.Y[0], 1e-15)

	_, err = tbl.At(9)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	_, err = tbl.At(-1)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

// TestNewTable_Validation rejects empty tables and copies the input slice.
func TestNewTable_Validation(t *testing.T) {
	_, err := domain.NewTable(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)

	pairs := []domain.Pair{{X: domain.Point{0}, Y: domain.Point{1}}}
	tbl, err := domain.NewTable(pairs)
	require.NoError(t, err)

	// Mutating the caller's slice must not reach the table.
	pairs[0] = domain.Pair{X: domain.Point{9}, Y: domain.Point{9}}
	p, err := tbl.At(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X[0])
}

// TestPoint_DistanceTo covers the 1-D and 2-D distance rules.
func TestPoint_DistanceTo(t *testing.T) {
	assert.InDelta(t, 0.5, domain.Point{0}.DistanceTo(domain.Point{0.5}), 1e-15)
	assert.InDelta(t, 5.0, domain.Point{0, 0}.DistanceTo(domain.Point{3, 4}), 1e-15)
}

// TestField_Lifecycle wraps a vector over a table and reads it back, and
// checks the length invariant.
func TestField_Lifecycle(t *testing.T) {
	iv, err := domain.NewInterval(0, 1, 2)
	require.NoError(t, err)
	tbl, err := domain.TensorTable(iv)
	require.NoError(t, err)

	_, err = domain.NewField(tbl, mat.NewVecDense(3, nil))
	assert.ErrorIs(t, err, domain.ErrLengthMismatch, "vector shorter than table")

	vec := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	f, err := domain.NewField(tbl, vec)
	require.NoError(t, err)

	assert.Equal(t, 4, f.Len())
	v, err := f.At(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = f.At(4)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	p, err := f.Pair(3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.X[0])
	assert.Equal(t, 1.0, p.Y[0])
}

// TestTabulate evaluates a separable callable over the product table in
// table order.
func TestTabulate(t *testing.T) {
	iv, err := domain.NewInterval(0, 1, 3)
	require.NoError(t, err)
	tbl, err := domain.TensorTable(iv)
	require.NoError(t, err)

	vec, err := domain.Tabulate(tbl, func(x, y domain.Point) float64 {
		return x[0] + 10*y[0]
	})
	require.NoError(t, err)
	require.Equal(t, 9, vec.Len())

	// ij = 2*3 + 1: x=1.0, y=0.5 → 1 + 5 = 6.
	assert.InDelta(t, 6.0, vec.AtVec(7), 1e-15)

	_, err = domain.Tabulate(nil, nil)
	assert.ErrorIs(t, err, domain.ErrNilInput)
}
