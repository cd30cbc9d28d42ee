// Package domain: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with fmt.Errorf("ctx: %w", ...)); tests match them via errors.Is.
package domain

import "errors"

var (
	// ErrBadDomain indicates invalid base-domain parameters
	// (fewer than 2 nodes, non-finite or inverted bounds).
	ErrBadDomain = errors.New("domain: invalid base-domain parameters")

	// ErrOutOfRange indicates a dof index outside [0, Len).
	ErrOutOfRange = errors.New("domain: dof index out of range")

	// ErrEmptyTable indicates a dof-coordinate table with no entries.
	ErrEmptyTable = errors.New("domain: empty dof-coordinate table")

	// ErrLengthMismatch indicates a vector whose length disagrees with the
	// dof-coordinate table it is paired with.
	ErrLengthMismatch = errors.New("domain: vector/table length mismatch")

	// ErrNilInput indicates a nil table, vector or callable argument.
	ErrNilInput = errors.New("domain: nil input")
)
