// Package balance implements the iterative cell-count balancing drivers
// that run after a fleet change or a full partition, repeatedly pairing an
// under-target buyer with an adjacent over-target seller and invoking the
// transfer engine until a pass moves no cell or the iteration budget is
// exhausted.
//
// Grounded on
// _examples/original_source/src/planner/cpp/continuous/handler/transfer.py
// (Run, the ascending buyer-first driver used by the Transfer change
// handler) and
// _examples/original_source/src/planner/cpp/multi/transfer.py (RunCycling,
// AreaTransferringPlanner's round-robin driver used by whole-fleet
// rebalancing).
package balance

import (
	"sort"

	"github.com/mcppgo/mcpp/grid"
	"github.com/mcppgo/mcpp/transfer"
)

// Config tunes a balancing run.
type Config struct {
	// MaxIter bounds the number of outer passes.
	MaxIter int
}

// DefaultConfig returns the reference driver's default iteration budget.
func DefaultConfig() Config { return Config{MaxIter: 100} }

// Run performs the ascending buyer-first balancing pass: on each iteration
// it visits agents from smallest region to largest, and for the first
// agent/neighbor pair with a transferable surplus, moves roughly half the
// difference across using transfer.Area, then restarts the scan. Stops
// when a full pass makes no transfer or MaxIter is reached.
//
// seeds must give each agent's seed cell in index order (never transferred
// away, per spec §4.4's "an agent never gives up its own seed").
func Run(lm *grid.LabelMatrix, n int, seeds []grid.Coord, cfg Config) {
	if cfg.MaxIter <= 0 {
		cfg = DefaultConfig()
	}
	target := targetCount(lm, n)

	for iter := 0; iter < cfg.MaxIter; iter++ {
		progressed := false

		parts := lm.Partition(n)
		order := ascendingBySize(parts)

		for _, node := range order {
			neighbors := lm.Border(parts[node])
			targets := sortDescendingBySize(neighbors, parts)

			for _, peer := range targets {
				buyerCount := len(parts[node])
				sellerCount := len(parts[peer])
				diff := sellerCount - buyerCount
				if diff < 1 || (diff == 1 && sellerCount == target+1) {
					continue
				}

				toTransfer := (diff + 1) / 2
				seed := seeds[peer]
				frontier := lm.AdjacentCells(peer, node)
				moved := transfer.Area(lm, peer, node, frontier, toTransfer, &seed)
				if moved == 0 {
					continue
				}
				progressed = true
				break
			}
			if progressed {
				break
			}
		}

		if !progressed {
			return
		}
	}
}

// RunCycling performs the round-robin balancing pass: each iteration picks
// the next agent in a fixed cyclic order and tries, in descending-size
// order, to pull cells from a neighbor using transfer.AreaSubtree. Gives up
// after n consecutive iterations without any transfer, rather than MaxIter
// alone, mirroring the reference's consecutive_failures counter.
func RunCycling(lm *grid.LabelMatrix, n int, seeds []grid.Coord, cfg Config) {
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 50
	}
	target := targetCount(lm, n)

	consecutiveFailures := 0
	for iter, node := 0, 0; iter < cfg.MaxIter; iter, node = iter+1, (node+1)%n {
		parts := lm.Partition(n)
		neighbors := lm.Border(parts[node])
		targets := sortDescendingBySize(neighbors, parts)

		success := false
		for _, peer := range targets {
			receiverCount := len(parts[node])
			if receiverCount > target {
				continue
			}
			senderCount := len(parts[peer])
			diff := senderCount - receiverCount
			if diff < 1 || (diff == 1 && senderCount == target+1) {
				continue
			}

			toTransfer := (diff + 1) / 2
			seed := seeds[peer]
			frontier := lm.AdjacentCells(peer, node)
			if transfer.AreaSubtree(lm, peer, node, frontier, toTransfer, &seed) > 0 {
				success = true
				break
			}
		}

		if !success {
			consecutiveFailures++
			if consecutiveFailures >= n {
				return
			}
		} else {
			consecutiveFailures = 0
		}
	}
}

func targetCount(lm *grid.LabelMatrix, n int) int {
	free := 0
	for r := 0; r < lm.H; r++ {
		for c := 0; c < lm.W; c++ {
			if lm.Labels[r][c] >= 0 {
				free++
			}
		}
	}
	return free / n
}

// ascendingBySize returns agent indices sorted by smallest region first.
func ascendingBySize(parts [][]grid.Coord) []int {
	order := make([]int, len(parts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(parts[order[i]]) < len(parts[order[j]])
	})
	return order
}

// sortDescendingBySize returns the keys of neighbors sorted by largest
// region first, breaking ties by ascending label so the result is fully
// deterministic regardless of map iteration order.
func sortDescendingBySize(neighbors map[int][]grid.Coord, parts [][]grid.Coord) []int {
	order := make([]int, 0, len(neighbors))
	for k := range neighbors {
		order = append(order, k)
	}
	sort.Ints(order)
	sort.SliceStable(order, func(i, j int) bool {
		return len(parts[order[i]]) > len(parts[order[j]])
	})
	return order
}
