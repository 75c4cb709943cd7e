package grid

// Kind classifies a single grid cell.
type Kind int8

const (
	// FREE cells may be traversed and assigned to an agent.
	FREE Kind = iota
	// OCCUPIED cells may never be assigned.
	OCCUPIED
)

// Grid is a rectangular occupancy grid of height H and width W, indexed
// (r,c). It is immutable after construction; New deep-copies the input
// kinds slice so later external mutation of the caller's slice cannot
// affect the Grid.
//
// Complexity: O(H*W) memory, O(1) per-cell lookup.
type Grid struct {
	H, W  int
	kinds [][]Kind // kinds[r][c]
}

// New constructs a Grid from a non-empty, rectangular 2D slice of Kind.
// Returns ErrEmptyGrid if values has no rows or no columns, ErrNonRectangular
// if any row length differs from the first, and ErrNoFreeCell if every cell
// is OCCUPIED.
//
// Complexity: O(H*W) time and memory.
func New(values [][]Kind) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	kinds := make([][]Kind, h)
	freeCount := 0
	for r := 0; r < h; r++ {
		kinds[r] = make([]Kind, w)
		copy(kinds[r], values[r])
		for c := 0; c < w; c++ {
			if kinds[r][c] == FREE {
				freeCount++
			}
		}
	}
	if freeCount == 0 {
		return nil, ErrNoFreeCell
	}

	return &Grid{H: h, W: w, kinds: kinds}, nil
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.H && c >= 0 && c < g.W
}

// At returns the Kind of cell (r,c). Panics if out of bounds; callers must
// guard with InBounds first (the same discipline gridgraph.GridGraph uses
// for its neighbor loops).
func (g *Grid) At(r, c int) Kind {
	return g.kinds[r][c]
}

// IsFree reports whether (r,c) is in-bounds and FREE.
func (g *Grid) IsFree(r, c int) bool {
	return g.InBounds(r, c) && g.kinds[r][c] == FREE
}

// FreeCount returns the number of FREE cells in the grid.
// Complexity: O(H*W).
func (g *Grid) FreeCount() int {
	count := 0
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			if g.kinds[r][c] == FREE {
				count++
			}
		}
	}
	return count
}

// FreeCells returns the coordinates of every FREE cell in row-major order.
// Complexity: O(H*W) time and memory.
func (g *Grid) FreeCells() []Coord {
	cells := make([]Coord, 0, g.H*g.W)
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			if g.kinds[r][c] == FREE {
				cells = append(cells, Coord{R: r, C: c})
			}
		}
	}
	return cells
}

// Coord is a row/column coordinate within a Grid or LabelMatrix.
type Coord struct {
	R, C int
}

// dir4 lists the four cardinal offsets in the fixed order the STC walk
// emission (spec §4.6) depends on: right, down, left, up.
var dir4 = [4]Coord{
	{R: 0, C: 1},
	{R: 1, C: 0},
	{R: 0, C: -1},
	{R: -1, C: 0},
}

// dir8 extends dir4 with the four diagonal offsets, used by strongly_connected.
var dir8 = [8]Coord{
	{R: 0, C: 1}, {R: 1, C: 0}, {R: 0, C: -1}, {R: -1, C: 0},
	{R: -1, C: -1}, {R: -1, C: 1}, {R: 1, C: -1}, {R: 1, C: 1},
}

// Neighbors4 returns the in-bounds 4-neighbors of (r,c) in fixed
// right/down/left/up order.
// Complexity: O(1).
func (g *Grid) Neighbors4(r, c int) []Coord {
	return neighbors(g.H, g.W, r, c, dir4[:])
}

// Neighbors8 returns the in-bounds 8-neighbors of (r,c).
// Complexity: O(1).
func (g *Grid) Neighbors8(r, c int) []Coord {
	return neighbors(g.H, g.W, r, c, dir8[:])
}

func neighbors(h, w, r, c int, dirs []Coord) []Coord {
	out := make([]Coord, 0, len(dirs))
	for _, d := range dirs {
		nr, nc := r+d.R, c+d.C
		if nr >= 0 && nr < h && nc >= 0 && nc < w {
			out = append(out, Coord{R: nr, C: nc})
		}
	}
	return out
}
