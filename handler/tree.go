package handler

import "sort"

// sortedNeighbors returns the labels adjacent to node in adj, in
// ascending order, so callers get a deterministic iteration order over a
// map[int]struct{} whose native range order is randomized per run.
func sortedNeighbors(adj map[int]map[int]struct{}, node int) []int {
	nbrs := make([]int, 0, len(adj[node]))
	for nb := range adj[node] {
		nbrs = append(nbrs, nb)
	}
	sort.Ints(nbrs)
	return nbrs
}

// weightedTree spans the agent-adjacency graph adj from root via
// breadth-first search (parent links recorded on first visit), then
// post-order accumulates each node's subtree node count and weight.
// children[node] lists node's tree children; countWeight[node] is
// (subtree node count, subtree total weight).
//
// Grounded on dfs_weighted_tree in
// _examples/original_source/src/planner/cpp/utils.py (named "dfs" there
// but implemented as a BFS parent-assignment pass followed by a recursive
// post-order weight rollup, carried over unchanged).
func weightedTree(adj map[int]map[int]struct{}, nodeWeights []int, root int) (children map[int][]int, countWeight map[int][2]int) {
	children = map[int][]int{}
	visited := map[int]bool{root: true}
	type qitem struct{ node, parent int }
	queue := []qitem{{root, -1}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if it.parent >= 0 {
			children[it.parent] = append(children[it.parent], it.node)
		}
		for _, nb := range sortedNeighbors(adj, it.node) {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, qitem{nb, it.node})
			}
		}
	}

	countWeight = map[int][2]int{}
	var traverse func(node int) (int, int)
	traverse = func(node int) (int, int) {
		count, weight := 1, nodeWeights[node]
		for _, child := range children[node] {
			cc, cw := traverse(child)
			count += cc
			weight += cw
		}
		countWeight[node] = [2]int{count, weight}
		return count, weight
	}
	traverse(root)
	return children, countWeight
}
