// Package transfer implements the single-cell and subtree cell-transfer
// primitives shared by every fleet-change handler: moving cells from a
// sender agent's region to a receiver's while preserving each region's
// 4-connectivity.
//
// Grounded on _examples/original_source/src/planner/cpp/utils.py's
// transfer_area, transfer_area_subtree and transfer_concurrently, carried
// over cell-for-cell with the bridge/strongly-connected tests delegated to
// package grid.
package transfer

import (
	"sort"

	"github.com/mcppgo/mcpp/grid"
)

// Area moves up to amount cells from sender to receiver, starting the
// search from the frontier cells in neighbors (sender cells already
// 4-adjacent to receiver's region) and expanding along sender's interior as
// cells are claimed. keepAway, when non-nil, is never transferred (the
// sender's seed cell, which every agent must keep).
//
// A candidate cell is only moved when it is strongly connected to receiver
// (spec §4.4: more than a quarter of its in-bounds 8-neighbors already carry
// receiver's label) and removing it would not disconnect sender's region
// (grid.LabelMatrix.IsNotBridge).
//
// Returns the number of cells actually transferred, which may be less than
// amount if the frontier is exhausted first.
func Area(lm *grid.LabelMatrix, sender, receiver int, neighbors []grid.Coord, amount int, keepAway *grid.Coord) int {
	transferred := 0
	queue := append([]grid.Coord(nil), neighbors...)

	for len(queue) > 0 && transferred < amount {
		cell := queue[0]
		queue = queue[1:]

		if keepAway != nil && cell == *keepAway {
			continue
		}
		if lm.Labels[cell.R][cell.C] != sender {
			continue
		}
		if !lm.StronglyConnected(cell, receiver) || !lm.IsNotBridge(cell) {
			continue
		}

		lm.Labels[cell.R][cell.C] = receiver
		transferred++
		for _, nb := range lm.Neighbors4(cell.R, cell.C) {
			if lm.Labels[nb.R][nb.C] == sender {
				queue = append(queue, nb)
			}
		}
	}

	return transferred
}

// AreaSubtree moves up to amount cells from sender to receiver like Area,
// but when a frontier cell is a bridge (removing it would disconnect
// sender's region) it instead carries along the whole subtree that cell's
// removal would orphan, transferring the bridge cell and every orphaned
// subtree together as one atomic unit. A subtree containing keepAway is
// never selected, and a bridge cell is skipped entirely when its eligible
// subtrees would overshoot the remaining budget.
//
// Grounded on transfer_area_subtree in utils.py.
func AreaSubtree(lm *grid.LabelMatrix, sender, receiver int, neighbors []grid.Coord, amount int, keepAway *grid.Coord) int {
	transferred := 0
	queue := append([]grid.Coord(nil), neighbors...)

	for len(queue) > 0 && transferred < amount {
		cell := queue[0]
		queue = queue[1:]

		if lm.Labels[cell.R][cell.C] != sender {
			continue
		}
		if keepAway != nil && cell == *keepAway {
			continue
		}

		if lm.IsNotBridge(cell) {
			lm.Labels[cell.R][cell.C] = receiver
			transferred++
			for _, nb := range lm.Neighbors4(cell.R, cell.C) {
				if lm.Labels[nb.R][nb.C] == sender {
					queue = append(queue, nb)
				}
			}
			continue
		}

		subtrees := eligibleSubtrees(lm.DFSSubtrees(cell), keepAway)
		total := 0
		for _, st := range subtrees {
			total += len(st)
		}
		if total >= amount-transferred {
			continue
		}

		lm.Labels[cell.R][cell.C] = receiver
		transferred++
		for _, subtree := range subtrees {
			for _, sc := range subtree {
				lm.Labels[sc.R][sc.C] = receiver
				transferred++
				for _, nb := range lm.Neighbors4(sc.R, sc.C) {
					if lm.Labels[nb.R][nb.C] == sender {
						queue = append(queue, nb)
					}
				}
			}
		}
	}

	return transferred
}

// Concurrently transfers cells of from out to the agents named in
// targets, where targets[id] is that agent's desired transfer amount.
// Agents are serviced in round-robin order, one candidate cell per agent
// per round, until every target has met its amount or exhausted its
// frontier. If keepAway is nil and exactly one target remains in play, the
// remainder of from's region is absorbed by that target in one step
// (mirroring the reference's single-receiver fast path).
//
// Grounded on transfer_concurrently in utils.py.
func Concurrently(lm *grid.LabelMatrix, from int, targets map[int]int, keepAway *grid.Coord) {
	order := make([]int, 0, len(targets))
	for id := range targets {
		order = append(order, id)
	}
	sort.Ints(order)

	transferredCount := map[int]int{}
	queues := map[int][]grid.Coord{}
	for _, id := range order {
		queues[id] = lm.AdjacentCells(from, id)
	}

	active := map[int]bool{}
	for _, id := range order {
		active[id] = true
	}

	for len(active) > 0 {
		for _, id := range order {
			if !active[id] {
				continue
			}

			if keepAway == nil && len(active) == 1 {
				absorbAll(lm, from, id)
				delete(active, id)
				break
			}

			q := queues[id]
			progressed := false
			for len(q) > 0 {
				cell := q[0]
				q = q[1:]

				if (keepAway != nil && cell == *keepAway) || lm.Labels[cell.R][cell.C] != from {
					continue
				}

				if lm.IsNotBridge(cell) {
					lm.Labels[cell.R][cell.C] = id
					transferredCount[id]++
					for _, nb := range lm.Neighbors4(cell.R, cell.C) {
						if lm.Labels[nb.R][nb.C] == from {
							q = append(q, nb)
						}
					}
					progressed = true
					break
				}

				subtrees := eligibleSubtrees(lm.DFSSubtrees(cell), keepAway)
				total := 0
				for _, st := range subtrees {
					total += len(st)
				}
				if total >= targets[id]-transferredCount[id] {
					continue
				}

				lm.Labels[cell.R][cell.C] = id
				transferredCount[id]++
				for _, subtree := range subtrees {
					for _, sc := range subtree {
						lm.Labels[sc.R][sc.C] = id
						transferredCount[id]++
						for _, nb := range lm.Neighbors4(sc.R, sc.C) {
							if lm.Labels[nb.R][nb.C] == from {
								q = append(q, nb)
							}
						}
					}
				}
				progressed = true
				break
			}
			queues[id] = q

			if transferredCount[id] >= targets[id] || (!progressed && len(q) == 0) {
				delete(active, id)
			}
		}
	}
}

// absorbAll relabels every remaining from cell to id, used when id is the
// sole remaining receiver in a Concurrently call.
func absorbAll(lm *grid.LabelMatrix, from, id int) {
	for r := 0; r < lm.H; r++ {
		for c := 0; c < lm.W; c++ {
			if lm.Labels[r][c] == from {
				lm.Labels[r][c] = id
			}
		}
	}
}

// eligibleSubtrees filters out any subtree containing keepAway.
func eligibleSubtrees(subtrees [][]grid.Coord, keepAway *grid.Coord) [][]grid.Coord {
	if keepAway == nil {
		return subtrees
	}
	var out [][]grid.Coord
	for _, st := range subtrees {
		contains := false
		for _, c := range st {
			if c == *keepAway {
				contains = true
				break
			}
		}
		if !contains {
			out = append(out, st)
		}
	}
	return out
}
