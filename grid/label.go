package grid

// Unassigned marks a FREE cell that has not yet been claimed by any agent.
// FromGrid returns every FREE cell as Unassigned; a partitioner either
// fills every FREE cell or reports ErrDisconnected. Partitioners use it as
// their BFS/DARP "not yet seen" sentinel instead of overloading 0 (which is
// a valid agent index).
const Unassigned = -2

// Occupied marks a cell that the underlying Grid reports OCCUPIED.
const Occupied = -1

// LabelMatrix assigns each FREE cell of a Grid to an agent index i >= 0, or
// Occupied (-1) for cells the Grid itself marks OCCUPIED. Invariants (I1)-(I3)
// of the planning engine are expressed over LabelMatrix: every FREE cell is
// labeled, each agent's cell set is non-empty and 4-connected, and each
// agent's seed cell belongs to its own label.
//
// A LabelMatrix is produced by a partitioner, mutated in place by the
// transfer engine and change handlers, and consumed by STC. It carries no
// lock of its own (see package doc): callers own exclusive access for the
// duration of any mutating call.
type LabelMatrix struct {
	H, W   int
	Labels [][]int // Labels[r][c]
}

// NewLabelMatrix allocates an (h,w) LabelMatrix with every cell set to fill.
// FromGrid calls this with fill=Unassigned (the starting matrix of the BFS
// partitioner); DARP calls it with fill=Occupied and then marks the FREE
// cells Unassigned.
func NewLabelMatrix(h, w, fill int) *LabelMatrix {
	labels := make([][]int, h)
	for r := range labels {
		labels[r] = make([]int, w)
		for c := range labels[r] {
			labels[r][c] = fill
		}
	}
	return &LabelMatrix{H: h, W: w, Labels: labels}
}

// FromGrid builds a LabelMatrix the same shape as g, with every OCCUPIED
// cell pre-set to Occupied and every FREE cell set to Unassigned.
func FromGrid(g *Grid) *LabelMatrix {
	lm := NewLabelMatrix(g.H, g.W, Unassigned)
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			if g.kinds[r][c] == OCCUPIED {
				lm.Labels[r][c] = Occupied
			}
		}
	}
	return lm
}

// Clone returns a deep copy of lm.
func (lm *LabelMatrix) Clone() *LabelMatrix {
	out := NewLabelMatrix(lm.H, lm.W, 0)
	for r := range lm.Labels {
		copy(out.Labels[r], lm.Labels[r])
	}
	return out
}

// At returns the label at (r,c).
func (lm *LabelMatrix) At(r, c int) int { return lm.Labels[r][c] }

// InBounds reports whether (r,c) lies within the matrix.
func (lm *LabelMatrix) InBounds(r, c int) bool {
	return r >= 0 && r < lm.H && c >= 0 && c < lm.W
}

// Neighbors4 returns the in-bounds 4-neighbors of (r,c) in fixed
// right/down/left/up order.
func (lm *LabelMatrix) Neighbors4(r, c int) []Coord {
	return neighbors(lm.H, lm.W, r, c, dir4[:])
}

// Neighbors8 returns the in-bounds 8-neighbors of (r,c).
func (lm *LabelMatrix) Neighbors8(r, c int) []Coord {
	return neighbors(lm.H, lm.W, r, c, dir8[:])
}

// Partition returns the per-agent cell sets P_0..P_{n-1} derived from lm in
// a single row-major pass, so agents receive their cells in deterministic
// order regardless of how lm was constructed (spec §9: "ordering MUST be
// stable").
//
// Complexity: O(H*W) time, O(H*W) memory.
func (lm *LabelMatrix) Partition(n int) [][]Coord {
	parts := make([][]Coord, n)
	for r := 0; r < lm.H; r++ {
		for c := 0; c < lm.W; c++ {
			lbl := lm.Labels[r][c]
			if lbl >= 0 && lbl < n {
				parts[lbl] = append(parts[lbl], Coord{R: r, C: c})
			}
		}
	}
	return parts
}

// Border computes, for a set of cells known to belong to one label, which
// of those cells touch each other label: result[j] lists the cells of
// `cells` that are 4-adjacent to at least one cell labeled j. Cells are
// visited, and each result list is filled, in the order of `cells`, which
// keeps the view deterministic across calls (spec §9).
//
// Complexity: O(len(cells)) time.
func (lm *LabelMatrix) Border(cells []Coord) map[int][]Coord {
	result := map[int][]Coord{}
	seen := map[[2]int]map[int]bool{}
	for _, cell := range cells {
		for _, nb := range lm.Neighbors4(cell.R, cell.C) {
			nbLabel := lm.Labels[nb.R][nb.C]
			if nbLabel < 0 || nbLabel == lm.Labels[cell.R][cell.C] {
				continue
			}
			key := [2]int{cell.R, cell.C}
			if seen[key] == nil {
				seen[key] = map[int]bool{}
			}
			if seen[key][nbLabel] {
				continue
			}
			seen[key][nbLabel] = true
			result[nbLabel] = append(result[nbLabel], cell)
		}
	}
	return result
}

// AdjList returns the agent-adjacency graph: i maps to the set of labels j
// such that some cell of P_i is 4-adjacent to some cell of P_j. The
// returned sets are freshly built on every call (spec §9: "ephemeral;
// callers must not cache them across transfer operations").
//
// Complexity: O(H*W) time.
func (lm *LabelMatrix) AdjList() map[int]map[int]struct{} {
	adj := map[int]map[int]struct{}{}
	addEdge := func(a, b int) {
		if adj[a] == nil {
			adj[a] = map[int]struct{}{}
		}
		adj[a][b] = struct{}{}
	}
	for r := 0; r < lm.H; r++ {
		for c := 0; c < lm.W; c++ {
			lbl := lm.Labels[r][c]
			if lbl < 0 {
				continue
			}
			// Only scan right/down neighbors per cell to visit each undirected
			// pair once; both directions are still recorded.
			for _, d := range dir4[:2] {
				nr, nc := r+d.R, c+d.C
				if !lm.InBounds(nr, nc) {
					continue
				}
				nbLbl := lm.Labels[nr][nc]
				if nbLbl >= 0 && nbLbl != lbl {
					addEdge(lbl, nbLbl)
					addEdge(nbLbl, lbl)
				}
			}
		}
	}
	return adj
}

// AdjacentCells returns the cells of label `from` that are 4-adjacent to at
// least one cell of label `to`, in row-major order.
//
// Complexity: O(H*W) time.
func (lm *LabelMatrix) AdjacentCells(from, to int) []Coord {
	var cells []Coord
	for r := 0; r < lm.H; r++ {
		for c := 0; c < lm.W; c++ {
			if lm.Labels[r][c] != from {
				continue
			}
			for _, nb := range lm.Neighbors4(r, c) {
				if lm.Labels[nb.R][nb.C] == to {
					cells = append(cells, Coord{R: r, C: c})
					break
				}
			}
		}
	}
	return cells
}

// AssignCounts returns, for each of n agents, the number of cells currently
// labeled to it.
//
// Complexity: O(H*W) time.
func (lm *LabelMatrix) AssignCounts(n int) []int {
	counts := make([]int, n)
	for r := 0; r < lm.H; r++ {
		for c := 0; c < lm.W; c++ {
			lbl := lm.Labels[r][c]
			if lbl >= 0 && lbl < n {
				counts[lbl]++
			}
		}
	}
	return counts
}

// StronglyConnected reports whether strictly more than 25% of cell's
// in-bounds 8-neighbors carry label. Used by the transfer engine to bias
// transfers toward compact boundaries.
//
// Complexity: O(1).
func (lm *LabelMatrix) StronglyConnected(cell Coord, label int) bool {
	neighborCount, labelCount := 0, 0
	for _, nb := range lm.Neighbors8(cell.R, cell.C) {
		neighborCount++
		if lm.Labels[nb.R][nb.C] == label {
			labelCount++
		}
	}
	return labelCount*4 > neighborCount
}
