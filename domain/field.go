// Package domain: fields over the product domain and callable tabulation.
package domain

import "gonum.org/v1/gonum/mat"

// Field is a solution vector reinterpreted as a function on Ω×Ω: one value
// per dof-coordinate-table entry, in table order. A Field shares its backing
// vector with the solver that produced it; treat it as read-only.
type Field struct {
	table *Table
	vec   *mat.VecDense
}

// NewField wraps vec as a field over table.
// Returns ErrNilInput for nil arguments and ErrLengthMismatch when the vector
// length differs from the table length.
// Complexity: O(1).
func NewField(table *Table, vec *mat.VecDense) (*Field, error) {
	if table == nil || vec == nil {
		return nil, ErrNilInput
	}
	if vec.Len() != table.Len() {
		return nil, ErrLengthMismatch
	}

	return &Field{table: table, vec: vec}, nil
}

// Len returns the number of dof values in the field.
func (f *Field) Len() int { return f.table.Len() }

// At returns the field value at dof i.
// Returns ErrOutOfRange when i is outside [0, Len).
func (f *Field) At(i int) (float64, error) {
	if i < 0 || i >= f.vec.Len() {
		return 0, ErrOutOfRange
	}

	return f.vec.AtVec(i), nil
}

// Pair returns the coordinate pair of dof i, delegating to the table.
func (f *Field) Pair(i int) (Pair, error) { return f.table.At(i) }

// Values returns the backing vector of the field (not a copy).
func (f *Field) Values() *mat.VecDense { return f.vec }

// Table returns the dof-coordinate table the field is defined over.
func (f *Field) Table() *Table { return f.table }

// Tabulate evaluates fn at every coordinate pair of table and returns the
// values as a vector in table order. This is the bridge from closed-form
// functions (right-hand sides, reference solutions) to dof vectors.
// Returns ErrNilInput for nil arguments.
// Complexity: O(n) evaluations.
func Tabulate(table *Table, fn func(x, y Point) float64) (*mat.VecDense, error) {
	if table == nil || fn == nil {
		return nil, ErrNilInput
	}

	vals := make([]float64, table.Len())
	table.Each(func(i int, p Pair) bool {
		vals[i] = fn(p.X, p.Y)

		return true
	})

	return mat.NewVecDense(len(vals), vals), nil
}

// FieldOf tabulates fn over table and wraps the result as a Field.
// Complexity: O(n) evaluations.
func FieldOf(table *Table, fn func(x, y Point) float64) (*Field, error) {
	vec, err := Tabulate(table, fn)
	if err != nil {
		return nil, err
	}

	return NewField(table, vec)
}
