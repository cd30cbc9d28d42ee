package linsys_test

import (
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorgrid/productfem/linsys"
)

// denseA returns the 3×3 test matrix
//
//	[2 1 0]
//	[1 2 1]
//	[0 1 2]
func denseA() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		2, 1, 0,
		1, 2, 1,
		0, 1, 2,
	})
}

// sparseA returns the same matrix in CSR form.
func sparseA() *sparse.CSR {
	dok := sparse.NewDOK(3, 3)
	a := denseA()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if v := a.At(i, j); v != 0 {
				dok.Set(i, j, v)
			}
		}
	}

	return dok.ToCSR()
}

// TestKind_String covers the closed enumeration names.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "dense", linsys.KindDense.String())
	assert.Equal(t, "sparse", linsys.KindSparse.String())
	assert.Equal(t, "operator", linsys.KindOperator.String())
	assert.Equal(t, "invalid", linsys.KindInvalid.String())
}

// TestOperand_ZeroValueIsInvalid guards the closed-dispatch rule: an unset
// operand must never look like a supported representation.
func TestOperand_ZeroValueIsInvalid(t *testing.T) {
	var o linsys.Operand
	assert.Equal(t, linsys.KindInvalid, o.Kind())

	r, c := o.Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)

	_, err := linsys.IdentifyRows(o, nil, false)
	assert.ErrorIs(t, err, linsys.ErrUnsupported)
}

// TestNewSystem_Validation checks squareness and A/b agreement.
func TestNewSystem_Validation(t *testing.T) {
	_, err := linsys.NewSystem(linsys.Operand{}, mat.NewVecDense(3, nil))
	assert.ErrorIs(t, err, linsys.ErrNilOperand, "invalid operand")

	_, err = linsys.NewSystem(linsys.NewDense(denseA()), nil)
	assert.ErrorIs(t, err, linsys.ErrNilOperand, "nil rhs")

	_, err = linsys.NewSystem(linsys.NewDense(mat.NewDense(2, 3, nil)), mat.NewVecDense(2, nil))
	assert.ErrorIs(t, err, linsys.ErrDimensionMismatch, "non-square A")

	_, err = linsys.NewSystem(linsys.NewDense(denseA()), mat.NewVecDense(2, nil))
	assert.ErrorIs(t, err, linsys.ErrDimensionMismatch, "rhs length")

	sys, err := linsys.NewSystem(linsys.NewDense(denseA()), mat.NewVecDense(3, nil))
	require.NoError(t, err)
	assert.Equal(t, 3, sys.Dim())
}

// TestIdentifyRows_DenseCopy replaces row 1 on a copy and leaves the
// original untouched.
func TestIdentifyRows_DenseCopy(t *testing.T) {
	a := denseA()
	out, err := linsys.IdentifyRows(linsys.NewDense(a), []int{1}, false)
	require.NoError(t, err)

	m, ok := out.Dense()
	require.True(t, ok)

	assert.Equal(t, []float64{0, 1, 0}, mat.Row(nil, 1, m), "row 1 is the basis row")
	assert.Equal(t, []float64{2, 1, 0}, mat.Row(nil, 0, m), "row 0 untouched")
	assert.Equal(t, []float64{1, 2, 1}, mat.Row(nil, 1, a), "original untouched on copy")
}

// TestIdentifyRows_DenseInPlace mutates the caller's matrix when asked to.
func TestIdentifyRows_DenseInPlace(t *testing.T) {
	a := denseA()
	out, err := linsys.IdentifyRows(linsys.NewDense(a), []int{0, 2}, true)
	require.NoError(t, err)

	m, _ := out.Dense()
	assert.Same(t, a, m, "in-place returns the caller's matrix")
	assert.Equal(t, []float64{1, 0, 0}, mat.Row(nil, 0, a))
	assert.Equal(t, []float64{0, 0, 1}, mat.Row(nil, 2, a))
	assert.Equal(t, []float64{1, 2, 1}, mat.Row(nil, 1, a))
}

// TestIdentifyRows_Sparse replaces rows through the DOK round-trip and
// matches the dense result entry for entry.
func TestIdentifyRows_Sparse(t *testing.T) {
	s := sparseA()
	out, err := linsys.IdentifyRows(linsys.NewSparse(s), []int{1}, false)
	require.NoError(t, err)

	m, ok := out.Sparse()
	require.True(t, ok)

	wantOut, err := linsys.IdentifyRows(linsys.NewDense(denseA()), []int{1}, false)
	require.NoError(t, err)
	want, _ := wantOut.Dense()

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, want.At(i, j), m.At(i, j), "entry (%d,%d)", i, j)
		}
	}

	// The source CSR keeps its original row.
	assert.Equal(t, 2.0, s.At(1, 1))
	assert.Equal(t, 1.0, s.At(1, 0))
}

// TestIdentifyRows_EmptyRows is a no-op edit but still honors the copy
// policy on the dense path.
func TestIdentifyRows_EmptyRows(t *testing.T) {
	a := denseA()
	out, err := linsys.IdentifyRows(linsys.NewDense(a), nil, false)
	require.NoError(t, err)

	m, _ := out.Dense()
	assert.NotSame(t, a, m, "copy policy holds even with no rows")
	assert.True(t, mat.Equal(a, m))
}

// TestIdentifyRows_BadIndex rejects out-of-range rows before mutating.
func TestIdentifyRows_BadIndex(t *testing.T) {
	a := denseA()
	_, err := linsys.IdentifyRows(linsys.NewDense(a), []int{3}, true)
	assert.ErrorIs(t, err, linsys.ErrBadIndex)
	assert.Equal(t, []float64{2, 1, 0}, mat.Row(nil, 0, a), "no mutation on failure")

	_, err = linsys.IdentifyRows(linsys.NewDense(a), []int{-1}, true)
	assert.ErrorIs(t, err, linsys.ErrBadIndex)
}

// TestIdentifyRows_Operator is the recognized extension point: no native
// row primitive, so the edit is unsupported.
func TestIdentifyRows_Operator(t *testing.T) {
	op := linsys.NewOperator(diagOp{n: 3, d: 2})
	_, err := linsys.IdentifyRows(op, []int{0}, false)
	assert.ErrorIs(t, err, linsys.ErrUnsupported)
}

// TestOperand_Clone deep-copies dense and sparse payloads and refuses
// operators.
func TestOperand_Clone(t *testing.T) {
	a := denseA()
	c, err := linsys.NewDense(a).Clone()
	require.NoError(t, err)
	m, _ := c.Dense()
	require.NotSame(t, a, m)
	a.Set(0, 0, 99)
	assert.Equal(t, 2.0, m.At(0, 0), "clone is independent")

	s := sparseA()
	c, err = linsys.NewSparse(s).Clone()
	require.NoError(t, err)
	sm, _ := c.Sparse()
	assert.Equal(t, 2.0, sm.At(1, 1))

	_, err = linsys.NewOperator(diagOp{n: 3, d: 2}).Clone()
	assert.ErrorIs(t, err, linsys.ErrUnsupported)
}

// diagOp is a matrix-free d·I operator used as the opaque representation in
// tests.
type diagOp struct {
	n int
	d float64
}

func (o diagOp) Dims() (int, int) { return o.n, o.n }

func (o diagOp) MulVecTo(dst *mat.VecDense, _ bool, x mat.Vector) {
	for i := 0; i < o.n; i++ {
		dst.SetVec(i, o.d*x.AtVec(i))
	}
}
