// Package darp implements the Divide Areas based on Robot/Agent Proximity
// iterative partitioner: starting from each agent's Euclidean distance
// field, it repeatedly reassigns cells by nearest weighted distance and
// reweights those fields until every agent's region is connected and cell
// counts are within a fairness threshold of an equal split.
//
// Grounded on https://github.com/alice-st/DARP as mirrored by
// _examples/original_source/src/planner/cpp/multi/darp.py: the cost-tensor
// argmin assignment, the connected-component-split correction multiplier,
// and the outer max-iter-doubling retry loop all follow that reference
// directly. Distance transforms use the exact Euclidean construction in
// distance.go rather than the reference's direct O(H*W*H*W) distance loop,
// since the corpus has no distance-transform library and the exact
// Felzenszwalt/Huttenlocher construction is the standard asymptotically
// faster substitute for the same quantity.
package darp

import (
	"math"
	"math/rand"

	"github.com/mcppgo/mcpp/grid"
)

// Partition runs the DARP iterative partitioner from seeds (one per agent,
// in agent index order) over g, returning a LabelMatrix satisfying
// invariants (I1)-(I3) plus DARP's additional connectivity/fairness
// properties T4/T5.
//
// If the outer retry loop exhausts opts' retry budget without reaching a
// fully connected, fairness-thresholded assignment, Partition returns
// ErrBalanceUnreached alongside the best assignment found.
func Partition(g *grid.Grid, seeds []grid.Coord, opts ...Option) (*grid.LabelMatrix, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	seen := map[grid.Coord]bool{}
	for _, s := range seeds {
		if !g.IsFree(s.R, s.C) {
			return nil, ErrSeedOutsideFree
		}
		if seen[s] {
			return nil, ErrSeedCollision
		}
		seen[s] = true
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rnd := rand.New(rand.NewSource(cfg.seed))
	if cfg.seed == 0 {
		rnd = rand.New(rand.NewSource(42069))
	}

	n := len(seeds)
	h, w := g.H, g.W
	freeMask := make([][]bool, h)
	freeCount := 0
	for r := 0; r < h; r++ {
		freeMask[r] = make([]bool, w)
		for c := 0; c < w; c++ {
			freeMask[r][c] = g.IsFree(r, c)
			if freeMask[r][c] {
				freeCount++
			}
		}
	}

	cost := make([][][]float64, n)
	for i, s := range seeds {
		cost[i] = euclideanDistanceFrom([2]int{s.R, s.C}, h, w)
	}

	target := freeCount / n
	threshold := cfg.fairWeight * float64(freeCount) / float64(n)
	maxIter := cfg.maxIter

	var best [][]int
	for retry := 0; retry <= cfg.maxRetries; retry++ {
		lm := grid.NewLabelMatrix(h, w, grid.Occupied)
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				if freeMask[r][c] {
					lm.Labels[r][c] = grid.Unassigned
				}
			}
		}

		var assignment [][]int
		var connectedOK bool
		for iter := 0; iter < maxIter; iter++ {
			assignment = argminAssign(cost, freeMask)
			counts := countLabels(assignment, n)

			connectedOK = true
			masks := make([][][]bool, n)
			for i := 0; i < n; i++ {
				masks[i] = maskForLabel(assignment, i)
				_, compCount := labelComponents(masks[i])
				if counts[i] > 0 && compCount != 1 {
					connectedOK = false
				}
			}

			fair := fairnessError(counts, target)
			if connectedOK && fair <= threshold {
				break
			}

			for i := 0; i < n; i++ {
				primary, other := splitPrimaryOther(masks[i], seeds[i])
				hasOther := false
				for _, row := range other {
					for _, v := range row {
						if v {
							hasOther = true
						}
					}
				}
				dPrimary := normalizedEuclideanDistance(primary, false)
				dOther := normalizedEuclideanDistance(other, false)
				criterion := make([][]float64, h)
				for r := 0; r < h; r++ {
					criterion[r] = make([]float64, w)
					for c := 0; c < w; c++ {
						criterion[r][c] = dPrimary[r][c] - dOther[r][c]
					}
				}
				norm := normalizeMatrix(criterion)
				for r := 0; r < h; r++ {
					for c := 0; c < w; c++ {
						if !freeMask[r][c] {
							continue
						}
						correction := 1.0
						if hasOther {
							correction = (norm[r][c]*2-1)*ConnectedVariation + 1
						}
						jitter := 1 + (rnd.Float64()*2-1)*RandomLevel
						fairAdj := 1.0
						if target > 0 {
							fairAdj = 1 + cfg.fairWeight*float64(counts[i]-target)/float64(target)
						}
						cost[i][r][c] *= correction * jitter * fairAdj
					}
				}
			}
		}

		best = assignment
		if connectedOK && fairnessError(countLabels(assignment, n), target) <= threshold {
			return toLabelMatrix(assignment, g), nil
		}
		maxIter *= 2
		threshold += cfg.fairWeight
	}

	return toLabelMatrix(best, g), ErrBalanceUnreached
}

// argminAssign assigns each free cell to the label with the smallest cost,
// breaking ties toward the smallest label index; occupied cells are left
// unassigned.
func argminAssign(cost [][][]float64, freeMask [][]bool) [][]int {
	h := len(freeMask)
	w := len(freeMask[0])
	n := len(cost)

	out := make([][]int, h)
	for r := 0; r < h; r++ {
		out[r] = make([]int, w)
		for c := 0; c < w; c++ {
			if !freeMask[r][c] {
				out[r][c] = grid.Occupied
				continue
			}
			best := 0
			bestCost := math.MaxFloat64
			for i := 0; i < n; i++ {
				if cost[i][r][c] < bestCost {
					bestCost = cost[i][r][c]
					best = i
				}
			}
			out[r][c] = best
		}
	}
	return out
}

func countLabels(assignment [][]int, n int) []int {
	counts := make([]int, n)
	for _, row := range assignment {
		for _, v := range row {
			if v >= 0 && v < n {
				counts[v]++
			}
		}
	}
	return counts
}

func maskForLabel(assignment [][]int, label int) [][]bool {
	h := len(assignment)
	w := len(assignment[0])
	mask := make([][]bool, h)
	for r := 0; r < h; r++ {
		mask[r] = make([]bool, w)
		for c := 0; c < w; c++ {
			mask[r][c] = assignment[r][c] == label
		}
	}
	return mask
}

// fairnessError returns the maximum absolute deviation of any label's cell
// count from target.
func fairnessError(counts []int, target int) float64 {
	max := 0
	for _, c := range counts {
		d := c - target
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return float64(max)
}

func toLabelMatrix(assignment [][]int, g *grid.Grid) *grid.LabelMatrix {
	h, w := g.H, g.W
	lm := grid.NewLabelMatrix(h, w, grid.Occupied)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if g.IsFree(r, c) {
				lm.Labels[r][c] = assignment[r][c]
			}
		}
	}
	return lm
}
