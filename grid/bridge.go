package grid

// IsNotBridge is the articulation test restricted to a single label: it
// temporarily treats cell as occupied, then verifies every pair of cell's
// 4-neighbors that share cell's original label remain connected within that
// label's region, using an internal BFS. lm is always restored to its
// original state before returning, including when called concurrently with
// nothing else (the engine is single-threaded per spec §5, but the
// restore-before-return discipline is unconditional so a caller can never
// observe the transient occupied state).
//
// Cost is O(|P_label|) worst case per call, dominated by the internal BFS
// reachability checks; this primitive is called once per candidate cell in
// every transfer pass.
func (lm *LabelMatrix) IsNotBridge(cell Coord) bool {
	label := lm.Labels[cell.R][cell.C]

	var same []Coord
	for _, nb := range lm.Neighbors4(cell.R, cell.C) {
		if lm.Labels[nb.R][nb.C] == label {
			same = append(same, nb)
		}
	}

	lm.Labels[cell.R][cell.C] = Occupied
	defer func() { lm.Labels[cell.R][cell.C] = label }()

	for i := 1; i < len(same); i++ {
		if !lm.connected(same[0], same[i], label) {
			return false
		}
	}
	return true
}

// connected reports whether start and end are reachable from one another
// through cells carrying label, via 4-connectivity BFS.
func (lm *LabelMatrix) connected(start, end Coord, label int) bool {
	if start == end {
		return true
	}
	visited := map[Coord]bool{start: true}
	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range lm.Neighbors4(cur.R, cur.C) {
			if visited[nb] || lm.Labels[nb.R][nb.C] != label {
				continue
			}
			if nb == end {
				return true
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}
	return false
}

// DFSSubtrees enumerates the connected subtrees that result if root were
// removed: each subtree is the set of root-label cells reachable through
// one of root's 4-neighbors without passing back through root. Used by
// transfer_area_subtree and transfer_concurrently to move a bridge cell
// safely, by carrying along every subtree it would otherwise orphan.
//
// Complexity: O(|P_label|) worst case.
func (lm *LabelMatrix) DFSSubtrees(root Coord) [][]Coord {
	label := lm.Labels[root.R][root.C]
	visited := map[Coord]bool{root: true}

	var subtrees [][]Coord
	for _, nb := range lm.Neighbors4(root.R, root.C) {
		if lm.Labels[nb.R][nb.C] != label || visited[nb] {
			continue
		}
		subtree := lm.dfsCollect(nb, label, visited)
		if len(subtree) > 0 {
			subtrees = append(subtrees, subtree)
		}
	}
	return subtrees
}

// dfsCollect walks the label-connected component starting at start using an
// explicit stack (iterative, mirroring dfs.DFS's non-recursive discipline),
// marking every visited cell in the shared visited set so later subtrees in
// the same DFSSubtrees call never re-claim a cell a previous subtree owns.
func (lm *LabelMatrix) dfsCollect(start Coord, label int, visited map[Coord]bool) []Coord {
	stack := []Coord{start}
	var out []Coord
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node != start && visited[node] {
			continue
		}
		visited[node] = true
		out = append(out, node)
		for _, nb := range lm.Neighbors4(node.R, node.C) {
			if lm.Labels[nb.R][nb.C] == label && !visited[nb] {
				stack = append(stack, nb)
			}
		}
	}
	return out
}
