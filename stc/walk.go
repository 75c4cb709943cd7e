package stc

import "github.com/mcppgo/mcpp/grid"

// symmetricCell reflects cell about the axis orthogonal to dir within
// cell's own mega-cell: a vertical move (dir row-wise) flips the cell's
// local row, a horizontal move flips its local column, so the pair of
// cells produced for any one direction always lie on opposite sides of
// that mega-cell's center line.
func symmetricCell(cell grid.Coord, dir [2]int) grid.Coord {
	mega := cellToMega(cell)
	base := mega.toCell()
	localR, localC := cell.R-base.R, cell.C-base.C
	if dir[0] != 0 {
		localR ^= 1
	} else {
		localC ^= 1
	}
	return grid.Coord{R: base.R + localR, C: base.C + localC}
}

// outsideMegaCell returns the mega-cell bordering the internal edge that a
// move from curr to next (both within mega) represents — i.e. the
// neighbor whose tree edge this internal step stands in for. Ports
// stc.py's get_neighbor_mega_cell exactly.
func outsideMegaCell(curr, next grid.Coord, mega MegaCoord) MegaCoord {
	base := mega.toCell()
	top := base
	topRight := grid.Coord{R: base.R, C: base.C + 1}
	bottomLeft := grid.Coord{R: base.R + 1, C: base.C}
	bottomRight := grid.Coord{R: base.R + 1, C: base.C + 1}

	pairIs := func(a, b, x, y grid.Coord) bool {
		return (a == x && b == y) || (a == y && b == x)
	}

	switch {
	case pairIs(curr, next, top, topRight):
		return MegaCoord{R: mega.R - 1, C: mega.C}
	case pairIs(curr, next, top, bottomLeft):
		return MegaCoord{R: mega.R, C: mega.C - 1}
	case pairIs(curr, next, bottomLeft, bottomRight):
		return MegaCoord{R: mega.R + 1, C: mega.C}
	default: // {topRight, bottomRight}
		return MegaCoord{R: mega.R, C: mega.C + 1}
	}
}

// isValidMove reports whether stepping from cur to cur+dir is permitted by
// the mega-grid tree: crossing mega-cells requires the tree edge between
// them; staying within a mega-cell requires the tree NOT to hold the edge
// to the mega-cell this internal step stands in for.
func isValidMove(lm *grid.LabelMatrix, t tree, cur, target grid.Coord) bool {
	curMega, targetMega := cellToMega(cur), cellToMega(target)
	if curMega != targetMega {
		return t.hasEdge(curMega, targetMega)
	}
	outside := outsideMegaCell(cur, target, curMega)
	return !t.hasEdge(curMega, outside)
}

// walkCell inflates t into a cell-level cyclic path over label's region,
// starting and ending at seed. Implements spec §4.6 Step C: from the
// current pointer, try each direction in fixed order; on the first valid
// move, emit one or two coverage cells per the symmetric-cell rules, then
// restart the direction scan from the new pointer. Ends when no direction
// is valid.
func walkCell(lm *grid.LabelMatrix, label int, seed grid.Coord, t tree) []grid.Coord {
	visited := map[grid.Coord]bool{seed: true}
	traj := []grid.Coord{seed}
	lastCov := seed
	cur := seed
	var prevDir *[2]int

	for {
		moved := false
		for _, d := range megaDirs {
			target := grid.Coord{R: cur.R + d[0], C: cur.C + d[1]}
			if !lm.InBounds(target.R, target.C) || visited[target] {
				continue
			}
			if !isValidMove(lm, t, cur, target) {
				continue
			}

			visited[target] = true
			lastCov, traj = emitStep(lm, label, cur, target, d, prevDir, lastCov, traj)
			cur = target
			dir := d
			prevDir = &dir
			moved = true
			break
		}
		if !moved {
			break
		}
	}

	return dedupConsecutive(traj)
}

// emitStep applies one of the three symmetric-cell emission rules and
// returns the updated last-emitted-coverage-cell and trajectory.
func emitStep(lm *grid.LabelMatrix, label int, cur, target grid.Coord, dir [2]int, prevDir *[2]int, lastCov grid.Coord, traj []grid.Coord) (grid.Coord, []grid.Coord) {
	targetFree := maskedView(lm, label, target.R, target.C)

	emitTargetOrSymmetric := func() (grid.Coord, []grid.Coord) {
		if targetFree {
			return target, append(traj, target)
		}
		st := symmetricCell(target, dir)
		if maskedView(lm, label, st.R, st.C) {
			return st, append(traj, st)
		}
		return lastCov, traj
	}

	switch {
	case lastCov == cur:
		return emitTargetOrSymmetric()

	case lastCov == symmetricCell(cur, dir):
		if targetFree {
			return target, append(traj, target)
		}
		cand := grid.Coord{R: lastCov.R + dir[0], C: lastCov.C + dir[1]}
		if lm.InBounds(cand.R, cand.C) && maskedView(lm, label, cand.R, cand.C) {
			return cand, append(traj, cand)
		}
		return lastCov, traj

	case prevDir != nil && lastCov == symmetricCell(cur, *prevDir):
		mid := grid.Coord{R: cur.R + prevDir[0], C: cur.C + prevDir[1]}
		if lm.InBounds(mid.R, mid.C) && maskedView(lm, label, mid.R, mid.C) {
			traj = append(traj, mid)
			lastCov = mid
		}
		return emitTargetOrSymmetric()

	default:
		return emitTargetOrSymmetric()
	}
}

// dedupConsecutive removes consecutive duplicate cells from a cyclic
// sequence, including across the wrap from last to first.
func dedupConsecutive(traj []grid.Coord) []grid.Coord {
	if len(traj) == 0 {
		return traj
	}
	out := traj[:1]
	for _, c := range traj[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
