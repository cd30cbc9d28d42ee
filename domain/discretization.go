// Package domain: the base-domain discretization contract and two uniform
// reference implementations (Interval, RectGrid).
package domain

import "math"

// Discretization is the contract an external discretization of the base
// domain Ω must satisfy for this module to consume it. It is read-only:
// nothing here mutates or re-orders what the discretization reports.
//
//   - GeomDim reports the geometric dimension of Ω (1 or 2 are supported by
//     the default boundary rule; other values are rejected there).
//   - DofCoords enumerates the marginal dof coordinates in their fixed
//     discretization order.
//   - BoundaryDofs enumerates (as indices into DofCoords) the marginal dofs
//     lying on the topological boundary of Ω.
type Discretization interface {
	GeomDim() int
	DofCoords() []Point
	BoundaryDofs() []int
}

// Interval is a uniform 1-D discretization of [a, b] with n nodes.
// Node i sits at a + i·(b-a)/(n-1); the boundary dofs are {0, n-1}.
type Interval struct {
	coords []Point
}

// NewInterval builds a uniform Interval with n ≥ 2 nodes on [a, b].
// Returns ErrBadDomain for n < 2, a ≥ b, or non-finite bounds.
// Complexity: O(n).
func NewInterval(a, b float64, n int) (*Interval, error) {
	if n < 2 || !isFinite(a) || !isFinite(b) || a >= b {
		return nil, ErrBadDomain
	}

	h := (b - a) / float64(n-1)
	coords := make([]Point, n)
	for i := 0; i < n; i++ {
		coords[i] = Point{a + float64(i)*h}
	}
	coords[n-1] = Point{b} // exact endpoint, no accumulated rounding

	return &Interval{coords: coords}, nil
}

// GeomDim returns 1.
func (iv *Interval) GeomDim() int { return 1 }

// DofCoords returns a copy of the node coordinates in node order.
// Complexity: O(n).
func (iv *Interval) DofCoords() []Point {
	out := make([]Point, len(iv.coords))
	copy(out, iv.coords)

	return out
}

// BoundaryDofs returns the endpoint indices {0, n-1}.
// Complexity: O(1).
func (iv *Interval) BoundaryDofs() []int {
	return []int{0, len(iv.coords) - 1}
}

// RectGrid is a uniform 2-D tensor grid on [ax,bx]×[ay,by] with nx×ny nodes.
// Nodes are ordered row-major in y: node (ix, iy) has index iy·nx + ix.
// The boundary dofs are the perimeter nodes.
type RectGrid struct {
	nx, ny int
	coords []Point
}

// NewRectGrid builds a uniform RectGrid with nx, ny ≥ 2 nodes per side.
// Returns ErrBadDomain for degenerate sides or non-finite bounds.
// Complexity: O(nx·ny).
func NewRectGrid(ax, bx, ay, by float64, nx, ny int) (*RectGrid, error) {
	if nx < 2 || ny < 2 {
		return nil, ErrBadDomain
	}
	if !isFinite(ax) || !isFinite(bx) || !isFinite(ay) || !isFinite(by) {
		return nil, ErrBadDomain
	}
	if ax >= bx || ay >= by {
		return nil, ErrBadDomain
	}

	hx := (bx - ax) / float64(nx-1)
	hy := (by - ay) / float64(ny-1)
	coords := make([]Point, 0, nx*ny)
	for iy := 0; iy < ny; iy++ {
		y := ay + float64(iy)*hy
		if iy == ny-1 {
			y = by
		}
		for ix := 0; ix < nx; ix++ {
			x := ax + float64(ix)*hx
			if ix == nx-1 {
				x = bx
			}
			coords = append(coords, Point{x, y})
		}
	}

	return &RectGrid{nx: nx, ny: ny, coords: coords}, nil
}

// GeomDim returns 2.
func (g *RectGrid) GeomDim() int { return 2 }

// DofCoords returns a copy of the node coordinates in grid order.
// Complexity: O(nx·ny).
func (g *RectGrid) DofCoords() []Point {
	out := make([]Point, len(g.coords))
	copy(out, g.coords)

	return out
}

// BoundaryDofs returns the indices of the perimeter nodes, in grid order.
// Complexity: O(nx·ny).
func (g *RectGrid) BoundaryDofs() []int {
	var out []int
	for iy := 0; iy < g.ny; iy++ {
		for ix := 0; ix < g.nx; ix++ {
			if ix == 0 || ix == g.nx-1 || iy == 0 || iy == g.ny-1 {
				out = append(out, iy*g.nx+ix)
			}
		}
	}

	return out
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
