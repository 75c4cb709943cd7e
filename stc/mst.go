package stc

import "github.com/mcppgo/mcpp/grid"

// tree is the mega-grid spanning tree's adjacency set.
type tree map[MegaCoord]map[MegaCoord]struct{}

func newTree() tree { return tree{} }

func (t tree) addEdge(a, b MegaCoord) {
	if t[a] == nil {
		t[a] = map[MegaCoord]struct{}{}
	}
	if t[b] == nil {
		t[b] = map[MegaCoord]struct{}{}
	}
	t[a][b] = struct{}{}
	t[b][a] = struct{}{}
}

func (t tree) hasEdge(a, b MegaCoord) bool {
	_, ok := t[a][b]
	return ok
}

// freeMegaCells returns every FREE mega-cell in row-major order.
func freeMegaCells(mg *megaGrid) []MegaCoord {
	var out []MegaCoord
	for r := 0; r < mg.h; r++ {
		for c := 0; c < mg.w; c++ {
			if mg.free[r][c] {
				out = append(out, MegaCoord{R: r, C: c})
			}
		}
	}
	return out
}

// buildKruskalTree runs union-find over every FREE mega-cell, unioning
// preferred edges first and secondary edges second, matching the tiered
// priority spec §4.6 gives mega-grid edges. Returns ErrDisconnected if
// fewer than len(cells)-1 edges could be unioned.
//
// Grounded on github.com/katalvlaran/lvlath's prim_kruskal.Kruskal: the
// same path-compression/union-by-rank disjoint-set discipline, generalized
// from a weight-sorted edge list to two fixed priority tiers.
func buildKruskalTree(lm *grid.LabelMatrix, label int, mg *megaGrid) (tree, error) {
	cells := freeMegaCells(mg)
	if len(cells) == 0 {
		return newTree(), nil
	}

	parent := map[MegaCoord]MegaCoord{}
	rank := map[MegaCoord]int{}
	for _, c := range cells {
		parent[c] = c
	}
	var find func(MegaCoord) MegaCoord
	find = func(m MegaCoord) MegaCoord {
		for parent[m] != m {
			parent[m] = parent[parent[m]]
			m = parent[m]
		}
		return m
	}
	union := func(a, b MegaCoord) bool {
		ra, rb := find(a), find(b)
		if ra == rb {
			return false
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
		return true
	}

	preferred, secondary := collectEdgeTiers(lm, label, mg, cells)

	t := newTree()
	joined := 0
	for _, tier := range [][][2]MegaCoord{preferred, secondary} {
		for _, e := range tier {
			if union(e[0], e[1]) {
				t.addEdge(e[0], e[1])
				joined++
			}
		}
	}

	if joined < len(cells)-1 {
		return t, ErrDisconnected
	}
	return t, nil
}

// collectEdgeTiers enumerates every candidate mega-grid edge once (scanning
// only the right/down neighbor of each FREE cell to avoid duplicates),
// bucketed by classifyEdge's verdict.
func collectEdgeTiers(lm *grid.LabelMatrix, label int, mg *megaGrid, cells []MegaCoord) (preferred, secondary [][2]MegaCoord) {
	for _, a := range cells {
		for _, d := range megaDirs[:2] {
			b := MegaCoord{R: a.R + d[0], C: a.C + d[1]}
			if !mg.isFree(b) {
				continue
			}
			switch classifyEdge(lm, label, a, b) {
			case preferredEdge:
				preferred = append(preferred, [2]MegaCoord{a, b})
			case secondaryEdge:
				secondary = append(secondary, [2]MegaCoord{a, b})
			}
		}
	}
	return preferred, secondary
}

// buildDFSTree runs an iterative DFS over the mega-grid starting at seed,
// visiting preferred neighbors before secondary neighbors (each tier in
// fixed right/down/left/up order), with parent links forming the
// spanning tree. Returns ErrDisconnected if any FREE mega-cell is
// unreached.
func buildDFSTree(lm *grid.LabelMatrix, label int, mg *megaGrid, seed MegaCoord) (tree, error) {
	t := newTree()
	visited := map[MegaCoord]bool{seed: true}
	stack := []MegaCoord{seed}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var preferred, secondary []MegaCoord
		for _, d := range megaDirs {
			nb := MegaCoord{R: cur.R + d[0], C: cur.C + d[1]}
			if !mg.isFree(nb) || visited[nb] {
				continue
			}
			switch classifyEdge(lm, label, cur, nb) {
			case preferredEdge:
				preferred = append(preferred, nb)
			case secondaryEdge:
				secondary = append(secondary, nb)
			}
		}
		// Push secondary first so preferred neighbors pop (and are visited)
		// first, matching the "preferred then secondary" priority.
		for i := len(secondary) - 1; i >= 0; i-- {
			if !visited[secondary[i]] {
				visited[secondary[i]] = true
				t.addEdge(cur, secondary[i])
				stack = append(stack, secondary[i])
			}
		}
		for i := len(preferred) - 1; i >= 0; i-- {
			if !visited[preferred[i]] {
				visited[preferred[i]] = true
				t.addEdge(cur, preferred[i])
				stack = append(stack, preferred[i])
			}
		}
	}

	if len(visited) < len(freeMegaCells(mg)) {
		return t, ErrDisconnected
	}
	return t, nil
}
