// Package productfem is the linear-system core for PDEs posed on a product
// domain Ω×Ω — for example, pairwise hitting-time equations of a stochastic
// process on a spatial domain Ω.
//
// 🚀 What is productfem?
//
//	External weak-form assembly produces a square system A·u = b together
//	with a dof-coordinate table mapping every system index to a coordinate
//	pair (x, y) ∈ Ω×Ω. This module takes it from there:
//	  • domain/    — base-domain discretization contract, the product
//	    dof-coordinate table, and fields over Ω×Ω
//	  • linsys/    — the closed dense/sparse/operator representation of A
//	    and the row-edit adapter for each storage form
//	  • dirichlet/ — product boundary conditions: predicate + value →
//	    in-system Dirichlet enforcement
//	  • solver/    — representation-dispatched direct and iterative solves,
//	    lifted back into product-domain fields
//	  • logger/    — shared zerolog-based logging
//
// ✨ Why productfem?
//
//   - Deterministic: table order fixed at construction, every derived
//     sequence positionally aligned with it
//   - Honest dispatch: a closed three-way representation switch; unknown
//     forms fail loudly, never pass through
//   - Explicit ownership: copy-on-apply by default, opt-in mutation
//   - Sentinel errors everywhere, matched with errors.Is
//
// Weak forms, meshing, automatic differentiation and optimization loops are
// deliberately out of scope; they live in the collaborators that assemble
// the systems this module consumes.
package productfem
