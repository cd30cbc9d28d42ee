// Package solver inverts constrained linear systems A·u = b and lifts the
// result into a field over the product domain.
//
// 🚀 Dispatch:
//
//	Solve routes on the storage representation of A — nothing else:
//	  • dense            → direct LU (gonum/mat); numerical singularity
//	                       surfaces as ErrSingular
//	  • sparse-compressed → direct row-map Gaussian elimination with
//	                       partial pivoting; a zero pivot is ErrSingular
//	  • opaque operator   → restarted GMRES (gonum.org/v1/exp/linsolve);
//	                       convergence failure is ErrNotConverged, never a
//	                       silently returned garbage vector
//
// ✨ Contract:
//
//   - All-or-nothing: on any failure no partial solution is returned.
//   - The solution field has one value per dof-coordinate-table entry, in
//     table order.
//   - Synchronous and blocking; no retries happen here. Switching
//     representation or tolerance after a failure is caller policy, which is
//     why every error names the path that produced it.
//
// ⚙️ Usage:
//
//	s, _ := solver.New(tbl)                           // defaults
//	s, _  = solver.New(tbl, solver.WithTolerance(1e-8))
//	field, err := s.Solve(sys)
package solver
