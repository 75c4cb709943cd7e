package darp

import "github.com/mcppgo/mcpp/grid"

// labelComponents partitions the cells where mask is true into 4-connected
// components, mirroring the BFS-flood style of
// github.com/katalvlaran/lvlath's gridgraph.ConnectedComponents generalized
// from a whole-grid scan to an arbitrary boolean mask (here, "cells assigned
// to this agent"). Returns a component id per cell (-1 where mask is false)
// and the component count.
func labelComponents(mask [][]bool) ([][]int, int) {
	h := len(mask)
	w := len(mask[0])

	ids := make([][]int, h)
	for r := range ids {
		ids[r] = make([]int, w)
		for c := range ids[r] {
			ids[r][c] = -1
		}
	}

	next := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !mask[r][c] || ids[r][c] != -1 {
				continue
			}
			floodFill(mask, ids, grid.Coord{R: r, C: c}, next)
			next++
		}
	}
	return ids, next
}

func floodFill(mask [][]bool, ids [][]int, start grid.Coord, id int) {
	h := len(mask)
	w := len(mask[0])
	dirs := [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

	ids[start.R][start.C] = id
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nr, nc := cur.R+d[0], cur.C+d[1]
			if nr < 0 || nr >= h || nc < 0 || nc >= w {
				continue
			}
			if !mask[nr][nc] || ids[nr][nc] != -1 {
				continue
			}
			ids[nr][nc] = id
			queue = append(queue, grid.Coord{R: nr, C: nc})
		}
	}
}

// splitPrimaryOther returns a mask containing only the component that
// contains seed (the agent's "primary" component) and, separately, a mask of
// every other component's cells combined ("other" components) — the split
// get_connected_multiplier needs to compare the two regions' distance
// transforms.
func splitPrimaryOther(mask [][]bool, seed grid.Coord) (primary, other [][]bool) {
	ids, _ := labelComponents(mask)
	h := len(mask)
	w := len(mask[0])
	primaryID := ids[seed.R][seed.C]

	primary = make([][]bool, h)
	other = make([][]bool, h)
	for r := 0; r < h; r++ {
		primary[r] = make([]bool, w)
		other[r] = make([]bool, w)
		for c := 0; c < w; c++ {
			switch ids[r][c] {
			case -1:
			case primaryID:
				primary[r][c] = true
			default:
				other[r][c] = true
			}
		}
	}
	return primary, other
}
