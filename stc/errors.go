package stc

import "errors"

var (
	// ErrNoFreeCell is returned when the agent's mega-grid has no FREE
	// mega-cell. Plan checks the seed first, so a region with no FREE cell
	// at all reports ErrSeedOutsideFree instead.
	ErrNoFreeCell = errors.New("stc: agent region has no free cells")

	// ErrSeedOutsideFree is returned when the seed cell is not FREE in the
	// agent's masked view.
	ErrSeedOutsideFree = errors.New("stc: seed cell is not free for this agent")

	// ErrDisconnected is returned when the mega-grid spanning tree cannot
	// reach every FREE mega-cell from the seed's mega-cell.
	ErrDisconnected = errors.New("stc: mega-grid is not fully connected")

	// ErrUnknownMSTAlgo is returned for an Option naming an MST algorithm
	// other than "kruskal" or "dfs".
	ErrUnknownMSTAlgo = errors.New("stc: unknown mst algorithm")
)
