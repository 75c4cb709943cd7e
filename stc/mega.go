package stc

import "github.com/mcppgo/mcpp/grid"

// maskedView reports whether (r,c) belongs to label in lm, treating
// out-of-bounds as not free.
func maskedView(lm *grid.LabelMatrix, label, r, c int) bool {
	return lm.InBounds(r, c) && lm.Labels[r][c] == label
}

// buildMegaGrid coarsens lm's label-masked view of label into 2x2
// mega-cells: a mega-cell is FREE iff any of its (up to four, fewer at the
// grid's bottom/right edge) children is FREE.
func buildMegaGrid(lm *grid.LabelMatrix, label int) *megaGrid {
	h := (lm.H + 1) >> 1
	w := (lm.W + 1) >> 1
	mg := &megaGrid{h: h, w: w, free: make([][]bool, h)}
	for mr := 0; mr < h; mr++ {
		mg.free[mr] = make([]bool, w)
		for mc := 0; mc < w; mc++ {
			base := MegaCoord{R: mr, C: mc}.toCell()
			mg.free[mr][mc] = maskedView(lm, label, base.R, base.C) ||
				maskedView(lm, label, base.R, base.C+1) ||
				maskedView(lm, label, base.R+1, base.C) ||
				maskedView(lm, label, base.R+1, base.C+1)
		}
	}
	return mg
}

func (mg *megaGrid) inBounds(m MegaCoord) bool {
	return m.R >= 0 && m.R < mg.h && m.C >= 0 && m.C < mg.w
}

func (mg *megaGrid) isFree(m MegaCoord) bool {
	return mg.inBounds(m) && mg.free[m.R][m.C]
}

// edgeKind classifies a candidate mega-grid edge by how solidly the two
// mega-cells share free children at their border.
type edgeKind int

const (
	noEdge edgeKind = iota
	secondaryEdge
	preferredEdge
)

// borderPairs returns the two facing child-cell pairs straddling the
// border between 4-adjacent mega-cells a and b, one pair per row (vertical
// border) or column (horizontal border) of overlap.
func borderPairs(a, b MegaCoord) [2][2]grid.Coord {
	if a.R == b.R {
		colA, colB := 2*a.C+1, 2*b.C
		if b.C < a.C {
			colA, colB = 2*a.C, 2*b.C+1
		}
		return [2][2]grid.Coord{
			{{R: 2 * a.R, C: colA}, {R: 2 * a.R, C: colB}},
			{{R: 2*a.R + 1, C: colA}, {R: 2*a.R + 1, C: colB}},
		}
	}
	rowA, rowB := 2*a.R+1, 2*b.R
	if b.R < a.R {
		rowA, rowB = 2*a.R, 2*b.R+1
	}
	return [2][2]grid.Coord{
		{{R: rowA, C: 2 * a.C}, {R: rowB, C: 2 * a.C}},
		{{R: rowA, C: 2*a.C + 1}, {R: rowB, C: 2*a.C + 1}},
	}
}

// classifyEdge determines whether the border between a and b carries a
// preferred edge (some pair of facing children both FREE), a secondary
// edge (some child free on each side, but never matched as a full free
// pair), or no edge at all.
func classifyEdge(lm *grid.LabelMatrix, label int, a, b MegaCoord) edgeKind {
	pairs := borderPairs(a, b)
	aAnyFree, bAnyFree := false, false
	for _, pair := range pairs {
		aFree := maskedView(lm, label, pair[0].R, pair[0].C)
		bFree := maskedView(lm, label, pair[1].R, pair[1].C)
		if aFree && bFree {
			return preferredEdge
		}
		aAnyFree = aAnyFree || aFree
		bAnyFree = bAnyFree || bFree
	}
	if aAnyFree && bAnyFree {
		return secondaryEdge
	}
	return noEdge
}
