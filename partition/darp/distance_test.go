package darp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclideanDistanceFrom(t *testing.T) {
	d := euclideanDistanceFrom([2]int{0, 0}, 2, 2)
	assert.InDelta(t, 0, d[0][0], 1e-9)
	assert.InDelta(t, 1, d[0][1], 1e-9)
	assert.InDelta(t, 1, d[1][0], 1e-9)
	assert.InDelta(t, math.Sqrt2, d[1][1], 1e-9)
}

func TestSquaredEDT_SingleSeed(t *testing.T) {
	mask := [][]bool{
		{true, false, false},
		{false, false, false},
		{false, false, false},
	}
	sq := squaredEDT(mask)
	assert.InDelta(t, 0, sq[0][0], 1e-9)
	assert.InDelta(t, 1, sq[0][1], 1e-9)
	assert.InDelta(t, 4, sq[0][2], 1e-9)
	assert.InDelta(t, 2, sq[1][1], 1e-9)
	assert.InDelta(t, 8, sq[2][2], 1e-9)
}

func TestNormalizeMatrix_RangeZeroToOne(t *testing.T) {
	m := [][]float64{{0, 5}, {10, 2.5}}
	norm := normalizeMatrix(m)
	for _, row := range norm {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0+1e-6)
		}
	}
	assert.InDelta(t, 0, norm[0][0], 1e-3)
	assert.InDelta(t, 1, norm[1][0], 1e-3)
}

func TestNormalizeMatrix_ConstantInputDoesNotDivideByZero(t *testing.T) {
	m := [][]float64{{3, 3}, {3, 3}}
	assert.NotPanics(t, func() {
		norm := normalizeMatrix(m)
		for _, row := range norm {
			for _, v := range row {
				assert.False(t, math.IsNaN(v))
				assert.False(t, math.IsInf(v, 0))
			}
		}
	})
}

func TestNormalizedEuclideanDistance_AddOne(t *testing.T) {
	mask := [][]bool{{true, false}, {false, false}}
	withOne := normalizedEuclideanDistance(mask, true)
	withoutOne := normalizedEuclideanDistance(mask, false)
	for r := range withOne {
		for c := range withOne[r] {
			assert.InDelta(t, withoutOne[r][c]+1, withOne[r][c], 1e-9)
		}
	}
}
