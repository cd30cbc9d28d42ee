// Package domain models the spatial side of a product-domain discretization:
// the base domain Ω, the product domain Ω×Ω, and fields over it.
//
// 🚀 What lives here?
//
//	A small, allocation-conscious layer that everything else builds on:
//	  • Point — a 1-D or 2-D coordinate in Ω
//	  • Discretization — the contract an external mesh/discretization of Ω
//	    must satisfy (geometric dimension, dof coordinates, boundary dofs)
//	  • Interval / RectGrid — uniform reference discretizations of Ω,
//	    handy for tests and for self-contained use
//	  • Pair & Table — the dof-index → (x, y) coordinate table of Ω×Ω
//	  • Field — a solution vector reinterpreted as a function on Ω×Ω
//
// ✨ Guarantees:
//
//   - Table order is fixed at construction and never altered here; every
//     downstream sequence (boundary dofs, values, solutions) is aligned
//     with it positionally.
//   - All inputs are validated fail-fast; sentinel errors are matched with
//     errors.Is.
//   - Nothing in this package mutates caller-supplied data.
//
// ⚙️ Typical use:
//
//	m, _ := domain.NewInterval(0, 1, 5)      // Ω = [0,1], 5 nodes
//	tbl := domain.TensorTable(m)             // Ω×Ω table, ij = i·m + j
//	rhs := domain.Tabulate(tbl, f)           // evaluate f(x,y) per dof
//
// External discretizations plug in through the Discretization interface;
// Interval and RectGrid are reference implementations, not requirements.
package domain
