// Package linsys represents assembled linear systems A·u = b whose matrix may
// live in one of three storage forms, and adapts row-level edits to each.
//
// 🚀 What lives here?
//
//	  • Kind — a closed enumeration of the supported matrix representations:
//	    dense (gonum mat.Dense), sparse-compressed (james-bowman CSR), and
//	    opaque Operator (matrix-free, e.g. an external solver handle)
//	  • Operand — a tagged union carrying exactly one representation
//	  • System — an (A, b) bundle with validated, matching dimensions
//	  • IdentifyRows — replace selected rows of A with identity (basis) rows,
//	    the row-edit primitive behind Dirichlet enforcement
//
// ✨ Design rules:
//
//   - Dispatch is a closed three-way switch on Kind; an unknown or unset
//     representation surfaces ErrUnsupported, never a silent pass-through.
//     The zero Operand is deliberately invalid.
//   - Dense row replacement is a direct row assignment, in place or on a
//     clone. Sparse row replacement round-trips CSR → DOK → CSR, because a
//     compressed structure is not row-mutable; this conversion cost is part
//     of the contract, not hidden. Operator row replacement is an extension
//     point and currently unsupported.
//   - The numerical result of a row edit is representation-independent;
//     only the strategy differs.
//
// All user-triggered failures are sentinel errors matched with errors.Is.
package linsys
