package stc

import "github.com/mcppgo/mcpp/grid"

// Plan computes a cyclic Hamiltonian coverage walk over label's region of
// lm, starting at seed, and returns it as a sequence of cells with no two
// consecutive entries equal (including the wrap from last to first).
//
// Returns ErrSeedOutsideFree if seed is not part of label's region, and
// ErrDisconnected if the mega-grid spanning tree cannot reach every FREE
// mega-cell of label's region from seed's mega-cell.
func Plan(lm *grid.LabelMatrix, label int, seed grid.Coord, opts ...Option) ([]grid.Coord, error) {
	if !maskedView(lm, label, seed.R, seed.C) {
		return nil, ErrSeedOutsideFree
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	mg := buildMegaGrid(lm, label)
	if len(freeMegaCells(mg)) == 0 {
		return nil, ErrNoFreeCell
	}

	var t tree
	var err error
	switch cfg.algo {
	case algoDFS:
		t, err = buildDFSTree(lm, label, mg, cellToMega(seed))
	default:
		t, err = buildKruskalTree(lm, label, mg)
	}
	if err != nil {
		return nil, err
	}

	return walkCell(lm, label, seed, t), nil
}
