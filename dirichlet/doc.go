// Package dirichlet enforces Dirichlet boundary conditions on linear systems
// assembled over a product domain Ω×Ω.
//
// 🚀 What is a product boundary condition?
//
//	On a product domain the "boundary" is not the topological boundary of
//	Ω×Ω but any set of coordinate pairs singled out by a predicate — the
//	default rule is bdy(Ω)×Ω ∪ Ω×bdy(Ω), and an ε-neighborhood of the
//	diagonal x=y is a typical custom rule. Enforcing a Dirichlet value at
//	those dofs means replacing their matrix rows with identity rows and
//	their right-hand-side entries with the prescribed values, decoupling
//	"u(dof) = value" from the rest of the system.
//
// ✨ Key features:
//
//   - Default predicate built once per geometric dimension (1-D and 2-D);
//     an unsupported dimension is a construction-time error, not a silent
//     fallthrough
//   - Custom predicates and boundary values (constant or callable) via
//     functional options, resolved once at construction
//   - Copy-on-apply by default; WithInPlace opts into mutating the caller's
//     system
//   - Works on dense and sparse-compressed systems through linsys; opaque
//     operators are a recognized, currently unsupported extension point
//
// ⚙️ Usage:
//
//	bc, err := dirichlet.New(tbl,
//	    dirichlet.WithDefaultRule(m),   // m: the marginal discretization
//	    dirichlet.WithConstant(0),
//	)
//	sys2, err := bc.Apply(sys)
//
// Note on symmetry: Apply replaces boundary ROWS only; the matching columns
// keep their entries, so a symmetric A leaves Apply asymmetric. Callers
// needing symmetric Dirichlet elimination must symmetrize themselves.
package dirichlet
