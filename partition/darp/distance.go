package darp

import "math"

const inf = math.MaxFloat64 / 4

// dt1D computes the lower envelope of unit parabolas rooted at each finite
// f[q], i.e. the exact 1D squared distance transform of f. Implements the
// linear-time algorithm of Felzenszwalb & Huttenlocher, "Distance Transforms
// of Sampled Functions" — the standard way to generalize a 1D nearest-zero
// scan to exact (not chamfer-approximate) Euclidean distance in 2D, which
// spec §4.3 requires ("distance transforms are Euclidean").
func dt1D(f []float64) []float64 {
	n := len(f)
	d := make([]float64, n)
	v := make([]int, n)
	z := make([]float64, n+1)

	k := 0
	v[0] = 0
	z[0] = -inf
	z[1] = inf

	for q := 1; q < n; q++ {
		s := ((f[q] + float64(q*q)) - (f[v[k]] + float64(v[k]*v[k]))) / float64(2*q-2*v[k])
		for k > 0 && s <= z[k] {
			k--
			s = ((f[q] + float64(q*q)) - (f[v[k]] + float64(v[k]*v[k]))) / float64(2*q-2*v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = inf
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		d[q] = float64((q-v[k])*(q-v[k])) + f[v[k]]
	}
	return d
}

// squaredEDT returns, for every cell, the squared Euclidean distance to the
// nearest cell where mask is true. Runs dt1D down each column then across
// each row of the intermediate result, the standard two-pass separable
// construction of the 2D transform.
func squaredEDT(mask [][]bool) [][]float64 {
	h := len(mask)
	w := len(mask[0])

	col := make([][]float64, h)
	for r := range col {
		col[r] = make([]float64, w)
	}
	buf := make([]float64, h)
	for c := 0; c < w; c++ {
		for r := 0; r < h; r++ {
			if mask[r][c] {
				buf[r] = 0
			} else {
				buf[r] = inf
			}
		}
		out := dt1D(buf)
		for r := 0; r < h; r++ {
			col[r][c] = out[r]
		}
	}

	result := make([][]float64, h)
	rowBuf := make([]float64, w)
	for r := 0; r < h; r++ {
		copy(rowBuf, col[r])
		result[r] = dt1D(rowBuf)
	}
	return result
}

// euclideanDistanceFrom returns, for every cell of an (h,w) grid, its
// Euclidean distance to origin.
func euclideanDistanceFrom(origin [2]int, h, w int) [][]float64 {
	out := make([][]float64, h)
	for r := 0; r < h; r++ {
		out[r] = make([]float64, w)
		for c := 0; c < w; c++ {
			dr := float64(r - origin[0])
			dc := float64(c - origin[1])
			out[r][c] = math.Sqrt(dr*dr + dc*dc)
		}
	}
	return out
}

// normalizeMatrix rescales m to [0,1] via min-max normalization, guarded by
// Epsilon against a degenerate (constant) input.
func normalizeMatrix(m [][]float64) [][]float64 {
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, row := range m {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	out := make([][]float64, len(m))
	for r, row := range m {
		out[r] = make([]float64, len(row))
		for c, v := range row {
			out[r][c] = (v - min) / (max - min + Epsilon)
		}
	}
	return out
}

// normalizedEuclideanDistance returns the min-max normalized Euclidean
// distance transform of mask (distance to the nearest true cell), adding 1
// to every entry when addOne is set — mirroring
// _normalized_euclidean_distance(matrix, add_one) in the reference DARP.
func normalizedEuclideanDistance(mask [][]bool, addOne bool) [][]float64 {
	sq := squaredEDT(mask)
	h, w := len(sq), len(sq[0])
	dist := make([][]float64, h)
	for r := 0; r < h; r++ {
		dist[r] = make([]float64, w)
		for c := 0; c < w; c++ {
			dist[r][c] = math.Sqrt(sq[r][c])
		}
	}
	norm := normalizeMatrix(dist)
	if addOne {
		for r := range norm {
			for c := range norm[r] {
				norm[r][c] += 1
			}
		}
	}
	return norm
}
